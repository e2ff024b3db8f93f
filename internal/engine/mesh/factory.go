package mesh

import "github.com/drewbus/cabview/pkg/math"

// Factory creates panel boxes and tracks the live set for drawing.
type Factory struct {
	live []*Box
}

// NewFactory creates an empty box factory.
func NewFactory() *Factory {
	return &Factory{}
}

// NewBox creates a box mesh of the given full extents and registers it
// as live. Must be called with a current OpenGL context.
func (f *Factory) NewBox(label string, size math.Vec3, colorHex string) (*Box, error) {
	b, err := newBox(label, size, colorHex)
	if err != nil {
		return nil, err
	}
	b.factory = f
	f.live = append(f.live, b)
	return b, nil
}

// Live returns the boxes currently alive, in creation order.
func (f *Factory) Live() []*Box {
	return f.live
}

// remove drops a disposed box from the live set.
func (f *Factory) remove(b *Box) {
	for i, other := range f.live {
		if other == b {
			f.live = append(f.live[:i], f.live[i+1:]...)
			return
		}
	}
}

// Close disposes any boxes still alive. Normal teardown disposes
// meshes through their owner first; this is the backstop.
func (f *Factory) Close() {
	for len(f.live) > 0 {
		f.live[0].Dispose()
	}
}
