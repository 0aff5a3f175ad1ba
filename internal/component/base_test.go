package component

import (
	"errors"
	"testing"

	"github.com/GasparKral/WinR/internal/event"
	"github.com/GasparKral/WinR/internal/geom"
)

type received struct {
	kind   event.Kind
	source event.ID
}

// eventLog subscribes to every component kind and records deliveries.
type eventLog struct {
	events  []received
	anchors []*event.Anchor
}

func newEventLog(t *testing.T, reg *event.Registry) *eventLog {
	t.Helper()
	l := &eventLog{}
	for _, k := range event.ComponentKinds() {
		a := event.NewAnchor(event.ListenerFunc(func(kind event.Kind, source event.ID) {
			l.events = append(l.events, received{kind, source})
		}))
		if err := reg.Subscribe(k, a.Handle()); err != nil {
			t.Fatalf("Subscribe(%v) failed: %v", k, err)
		}
		l.anchors = append(l.anchors, a)
	}
	return l
}

func newTestBase(reg *event.Registry, opts ...Option) *Base {
	return New(geom.NewSize(100, 50), geom.NewPosition(10, 10), geom.Margin{}, geom.PaddingAll(5), reg, opts...)
}

func wantCorners(t *testing.T, b geom.Boundaries, want [4]geom.Position) {
	t.Helper()
	if got := b.Corners(); got != want {
		t.Errorf("bounds = %v, want %v", got, want)
	}
}

func TestNew_EagerBounds(t *testing.T) {
	b := newTestBase(event.NewRegistry())

	bounds, ok := b.Bounds()
	if !ok {
		t.Fatal("bounds not computed at construction")
	}
	wantCorners(t, bounds, [4]geom.Position{{X: 15, Y: 15}, {X: 105, Y: 15}, {X: 105, Y: 55}, {X: 15, Y: 55}})

	if b.SizingMode() != geom.BorderBox {
		t.Errorf("SizingMode() = %v, want border-box", b.SizingMode())
	}
	if !b.Visible() {
		t.Error("new component not visible")
	}
}

func TestNew_ContentBoxOption(t *testing.T) {
	b := newTestBase(event.NewRegistry(), WithSizingMode(geom.ContentBox))
	wantCorners(t, b.ResolveBounds(), [4]geom.Position{{X: 10, Y: 10}, {X: 110, Y: 10}, {X: 110, Y: 60}, {X: 10, Y: 60}})
}

func TestNew_NilRegistry(t *testing.T) {
	b := newTestBase(nil)
	if b.Registry() == nil {
		t.Fatal("Registry() = nil")
	}
	if b.ID() != 0 {
		t.Errorf("ID() = %d, want 0 from private registry", b.ID())
	}
}

func TestNew_UniqueIncreasingIDs(t *testing.T) {
	reg := event.NewRegistry()
	a := newTestBase(reg)
	b := newTestBase(reg)

	if a.ID() == b.ID() {
		t.Errorf("components share ID %d", a.ID())
	}
	if b.ID() <= a.ID() {
		t.Errorf("second ID %d not greater than first %d", b.ID(), a.ID())
	}
}

func TestCalculateBounds_Idempotent(t *testing.T) {
	b := newTestBase(event.NewRegistry(), WithSizingMode(geom.MarginBox))
	first := b.CalculateBounds()
	second := b.CalculateBounds()
	if first != second {
		t.Errorf("CalculateBounds() not idempotent: %v vs %v", first.Corners(), second.Corners())
	}
}

func TestSetSize_NoOp(t *testing.T) {
	reg := event.NewRegistry()
	b := newTestBase(reg)
	log := newEventLog(t, reg)
	before, _ := b.Bounds()

	b.SetSize(b.Size())

	after, ok := b.Bounds()
	if !ok || after != before {
		t.Errorf("no-op SetSize touched the cache: ok=%v", ok)
	}
	if len(log.events) != 0 {
		t.Errorf("no-op SetSize emitted %v", log.events)
	}
}

func TestSetters_NoOpOnEqualValue(t *testing.T) {
	reg := event.NewRegistry()
	b := newTestBase(reg)
	log := newEventLog(t, reg)

	b.SetPosition(b.Position())
	b.SetMargin(b.Margin())
	b.SetPadding(b.Padding())
	b.SetSizingMode(b.SizingMode())
	b.SetVisible(b.Visible())
	b.SetWrap(b.Wrap())
	b.SetOverflow(b.Overflow())
	b.SetSizePolicy(b.SizePolicy())

	if len(log.events) != 0 {
		t.Errorf("equal-value setters emitted %v", log.events)
	}
	if _, ok := b.Bounds(); !ok {
		t.Error("equal-value setters invalidated the cache")
	}
}

func TestSetters_EmitOneEvent(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(b *Base)
		kind       event.Kind
		invalidate bool
	}{
		{"size", func(b *Base) { b.SetSize(geom.NewSize(80, 40)) }, event.ComponentResized, true},
		{"position", func(b *Base) { b.SetPosition(geom.NewPosition(0, 3)) }, event.ComponentMoved, true},
		{"margin", func(b *Base) { b.SetMargin(geom.MarginAll(2)) }, event.ComponentMarginChanged, true},
		{"padding", func(b *Base) { b.SetPadding(geom.PaddingAll(1)) }, event.ComponentPaddingChanged, true},
		{"sizing mode", func(b *Base) { b.SetSizingMode(geom.ContentBox) }, event.ComponentResized, true},
		{"visible", func(b *Base) { b.SetVisible(false) }, event.ComponentVisibilityChanged, false},
		{"wrap", func(b *Base) { b.SetWrap(true) }, event.RenderRequested, false},
		{"overflow", func(b *Base) { b.SetOverflow(geom.OverflowScroll) }, event.RenderRequested, false},
		{"size policy", func(b *Base) { b.SetSizePolicy(geom.SizeFill) }, event.RenderRequested, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := event.NewRegistry()
			newTestBase(reg) // occupy ID 0
			b := newTestBase(reg)
			log := newEventLog(t, reg)

			tt.mutate(b)

			if len(log.events) != 1 {
				t.Fatalf("got %d events, want 1: %v", len(log.events), log.events)
			}
			if got := log.events[0]; got.kind != tt.kind || got.source != b.ID() {
				t.Errorf("event = (%v, %d), want (%v, %d)", got.kind, got.source, tt.kind, b.ID())
			}
			if _, ok := b.Bounds(); ok == tt.invalidate {
				t.Errorf("cache valid = %v, want %v", ok, !tt.invalidate)
			}
		})
	}
}

func TestSetPosition_DeliversToSubscribersInOrder(t *testing.T) {
	reg := event.NewRegistry()
	b := newTestBase(reg)

	var order []int
	var anchors []*event.Anchor
	for i := range 3 {
		a := event.NewAnchor(event.ListenerFunc(func(kind event.Kind, source event.ID) {
			if kind != event.ComponentMoved || source != b.ID() {
				t.Errorf("listener %d got (%v, %d)", i, kind, source)
			}
			order = append(order, i)
		}))
		_ = reg.Subscribe(event.ComponentMoved, a.Handle())
		anchors = append(anchors, a)
	}

	b.SetPosition(geom.NewPosition(50, 50))

	if len(order) != 3 || order[0] != 0 || order[1] != 1 || order[2] != 2 {
		t.Errorf("delivery order = %v, want [0 1 2]", order)
	}
}

func TestSetSize_ListenerSeesFreshBounds(t *testing.T) {
	reg := event.NewRegistry()
	b := newTestBase(reg)

	var sawInvalid bool
	var resolved geom.Boundaries
	a := event.NewAnchor(event.ListenerFunc(func(kind event.Kind, source event.ID) {
		_, ok := b.Bounds()
		sawInvalid = !ok
		resolved = b.ResolveBounds()
	}))
	_ = reg.Subscribe(event.ComponentResized, a.Handle())

	b.SetSize(geom.NewSize(20, 20))

	if !sawInvalid {
		t.Error("listener observed a valid cache before recomputation")
	}
	wantCorners(t, resolved, [4]geom.Position{{X: 15, Y: 15}, {X: 25, Y: 15}, {X: 25, Y: 25}, {X: 15, Y: 25}})
	if cached, ok := b.Bounds(); !ok || cached != resolved {
		t.Error("ResolveBounds did not repopulate the cache")
	}
}

// parent mimics a container that tracks its children's moves.
type parent struct {
	moves int
}

func (p *parent) OnEvent(kind event.Kind, source event.ID) {
	p.moves++
}

func TestDestroyedListener_Forgotten(t *testing.T) {
	reg := event.NewRegistry()
	b := newTestBase(reg)

	p := &parent{}
	owner := event.NewAnchor(p)
	_ = reg.Subscribe(event.ComponentMoved, owner.Handle())

	b.SetPosition(geom.NewPosition(1, 1))
	if p.moves != 1 {
		t.Fatalf("moves = %d, want 1", p.moves)
	}

	owner.Release()
	b.SetPosition(geom.NewPosition(2, 2))

	if p.moves != 1 {
		t.Errorf("destroyed listener called: moves = %d", p.moves)
	}
	if reg.Len(event.ComponentMoved) != 0 {
		t.Errorf("dead handle not removed: Len = %d", reg.Len(event.ComponentMoved))
	}
}

func TestResizeCycle_Panics(t *testing.T) {
	reg := event.NewRegistry(event.WithMaxDepth(8))
	b := newTestBase(reg)

	// A handler that keeps growing the component it listens to.
	a := event.NewAnchor(event.ListenerFunc(func(kind event.Kind, source event.ID) {
		s := b.Size()
		b.SetSize(s.WithWidth(s.Width + 1))
	}))
	_ = reg.Subscribe(event.ComponentResized, a.Handle())

	defer func() {
		err, _ := recover().(error)
		if !errors.Is(err, event.ErrReentrancyLimit) {
			t.Errorf("recovered %v, want ErrReentrancyLimit", err)
		}
	}()

	b.SetSize(geom.NewSize(1, 1))
	t.Fatal("resize cycle did not panic")
}

func TestRebind(t *testing.T) {
	first := event.NewRegistry()
	second := event.NewRegistry()
	for range 3 {
		second.AllocateID()
	}

	b := newTestBase(first)
	if b.ID() != 0 {
		t.Fatalf("ID() = %d, want 0", b.ID())
	}

	b.Rebind(first)
	if b.ID() != 0 || b.Registry() != first {
		t.Errorf("rebind to same registry changed ID to %d", b.ID())
	}

	b.Rebind(second)
	if b.ID() != 3 {
		t.Errorf("ID() after rebind = %d, want 3", b.ID())
	}
	if b.Registry() != second {
		t.Error("Registry() not updated")
	}

	log := newEventLog(t, second)
	b.SetVisible(false)
	if len(log.events) != 1 || log.events[0].source != 3 {
		t.Errorf("events after rebind = %v", log.events)
	}

	b.Rebind(nil)
	if b.Registry() != second {
		t.Error("Rebind(nil) replaced the registry")
	}
}

func TestHitTest(t *testing.T) {
	b := newTestBase(event.NewRegistry())

	if !b.HitTest(geom.NewPosition(20, 20)) {
		t.Error("HitTest inside = false")
	}
	if b.HitTest(geom.NewPosition(12, 12)) {
		t.Error("HitTest in padding = true")
	}

	b.SetVisible(false)
	if b.HitTest(geom.NewPosition(20, 20)) {
		t.Error("HitTest on hidden component = true")
	}
}

func TestEqual_IgnoresCacheAndRegistry(t *testing.T) {
	a := newTestBase(event.NewRegistry())
	b := newTestBase(event.NewRegistry())
	b.SetSize(geom.NewSize(1, 1))
	b.SetSize(a.Size())

	if _, ok := b.Bounds(); ok {
		t.Fatal("expected invalidated cache")
	}
	if !a.Equal(b) {
		t.Error("Equal() = false for same geometry")
	}
	if a.State() != b.State() {
		t.Error("State() differs for same geometry")
	}

	set := map[State]bool{a.State(): true}
	if !set[b.State()] {
		t.Error("State() not usable as a map key")
	}

	b.SetVisible(false)
	if a.Equal(b) {
		t.Error("Equal() = true with different visibility")
	}

	c := newTestBase(event.NewRegistry(), WithSizingMode(geom.MarginBox))
	if a.Equal(c) {
		t.Error("Equal() = true with different sizing mode")
	}

	var nilBase *Base
	if a.Equal(nilBase) || !nilBase.Equal(nil) {
		t.Error("Equal() nil handling")
	}
}
