package hexmap

import (
	"testing"

	"github.com/Neonscape/HexaMapper/internal/hexgrid"
)

var (
	testDefault = Color{0.5, 0.5, 0.5, 1}
	red         = Color{1, 0, 0, 1}
	green       = Color{0, 1, 0, 1}
	blue        = Color{0, 0, 1, 1}
)

func newTestEngine() *Engine {
	return NewEngine(16, testDefault)
}

func TestLayerSetGet(t *testing.T) {
	l := NewLayer("test", 16, testDefault)
	c := hexgrid.Coord{Col: 5, Row: 5}
	if got := l.CellAt(c); got != testDefault {
		t.Errorf("unpainted cell = %v, want default", got)
	}
	l.SetCell(c, green)
	if got := l.CellAt(c); got != green {
		t.Errorf("painted cell = %v", got)
	}
	if !l.IsPainted(c) {
		t.Error("cell not tracked as painted")
	}
	if got := l.CellAt(hexgrid.Coord{Col: 100, Row: 100}); got != testDefault {
		t.Errorf("distant cell = %v, want default", got)
	}
}

func TestLayerSparseChunks(t *testing.T) {
	l := NewLayer("test", 16, testDefault)
	l.SetCell(hexgrid.Coord{Col: 0, Row: 0}, red)
	l.SetCell(hexgrid.Coord{Col: 15, Row: 15}, red)
	l.SetCell(hexgrid.Coord{Col: 16, Row: 0}, red)
	l.SetCell(hexgrid.Coord{Col: -1, Row: -1}, red)
	if n := l.ChunkCount(); n != 3 {
		t.Errorf("chunk count = %d, want 3", n)
	}
}

func TestLayerErase(t *testing.T) {
	l := NewLayer("test", 16, testDefault)
	c := hexgrid.Coord{Col: 2, Row: 3}
	if l.EraseCell(c) {
		t.Error("erasing an unpainted cell reported a change")
	}
	l.SetCell(c, red)
	if !l.EraseCell(c) {
		t.Error("erase of a painted cell reported no change")
	}
	if l.CellAt(c) != testDefault {
		t.Error("erased cell did not revert to default")
	}
	if l.IsPainted(c) || l.PaintedCount() != 0 {
		t.Error("erased cell still tracked as painted")
	}
}

func TestLayerInsertionOrderSurvivesErase(t *testing.T) {
	e := newTestEngine()
	a, b, c, d := hexgrid.Coord{Col: 0, Row: 0}, hexgrid.Coord{Col: 1, Row: 0}, hexgrid.Coord{Col: 2, Row: 0}, hexgrid.Coord{Col: 3, Row: 0}
	e.SetCell(a, red)
	e.SetCell(b, green)
	e.SetCell(c, blue)
	e.EraseCell(b)
	e.SetCell(d, green)
	// Repainting an existing cell keeps its slot.
	e.SetCell(a, blue)

	got := e.PaintedCells()
	want := []hexgrid.Coord{a, c, d}
	if len(got) != len(want) {
		t.Fatalf("records = %d, want %d", len(got), len(want))
	}
	for i, w := range want {
		if got[i].Coord != w {
			t.Errorf("record %d = %v, want %v", i, got[i].Coord, w)
		}
	}
	if got[0].Color != blue {
		t.Errorf("repainted color = %v, want blue", got[0].Color)
	}
}

func TestCompositeAcrossLayers(t *testing.T) {
	e := newTestEngine()
	c := hexgrid.Coord{Col: 4, Row: 4}
	e.SetCell(c, red)

	e.AddLayer("Layer 1")
	if err := e.SetActive(1); err != nil {
		t.Fatal(err)
	}
	e.SetCell(c, blue)

	if got := e.CompositeCell(c); got != blue {
		t.Errorf("composite = %v, want the top layer's blue", got)
	}

	// Hiding the top layer reveals the lower paint.
	if err := e.SetLayerVisible(1, false); err != nil {
		t.Fatal(err)
	}
	if got := e.CompositeCell(c); got != red {
		t.Errorf("composite with hidden top = %v, want red", got)
	}

	// Erasing the top paint also reveals the lower layer.
	if err := e.SetLayerVisible(1, true); err != nil {
		t.Fatal(err)
	}
	e.EraseCell(c)
	if got := e.CompositeCell(c); got != red {
		t.Errorf("composite after erase = %v, want red", got)
	}
}

func TestPaintedCellsDeduplicates(t *testing.T) {
	e := newTestEngine()
	c := hexgrid.Coord{Col: 1, Row: 2}
	e.SetCell(c, red)
	e.AddLayer("Layer 1")
	if err := e.SetActive(1); err != nil {
		t.Fatal(err)
	}
	e.SetCell(c, blue)

	records := e.PaintedCells()
	if len(records) != 1 {
		t.Fatalf("records = %d, want 1", len(records))
	}
	if records[0].Color != blue {
		t.Errorf("composited color = %v, want blue", records[0].Color)
	}
}

func TestHiddenLayerExcluded(t *testing.T) {
	e := newTestEngine()
	e.SetCell(hexgrid.Coord{Col: 0, Row: 0}, red)
	if err := e.SetLayerVisible(0, false); err != nil {
		t.Fatal(err)
	}
	if n := len(e.PaintedCells()); n != 0 {
		t.Errorf("hidden layer contributed %d records", n)
	}
}

func TestVersionBumps(t *testing.T) {
	e := newTestEngine()
	v := e.Version()
	e.SetCell(hexgrid.Coord{Col: 0, Row: 0}, red)
	if e.Version() == v {
		t.Error("SetCell did not bump the version")
	}
	v = e.Version()
	e.EraseCell(hexgrid.Coord{Col: 9, Row: 9}) // no-op erase
	if e.Version() != v {
		t.Error("no-op erase bumped the version")
	}
	e.EraseCell(hexgrid.Coord{Col: 0, Row: 0})
	if e.Version() == v {
		t.Error("erase did not bump the version")
	}
	v = e.Version()
	e.AddLayer("Layer 1")
	if e.Version() == v {
		t.Error("AddLayer did not bump the version")
	}
}

func TestLayerStackManagement(t *testing.T) {
	e := newTestEngine()
	if err := e.RemoveLayer(0); err == nil {
		t.Error("removing the last layer should fail")
	}
	e.AddLayer("Layer 1")
	e.AddLayer("Layer 2")
	if err := e.MoveLayer(2, 0); err != nil {
		t.Fatal(err)
	}
	if e.Layers()[0].Name != "Layer 2" {
		t.Errorf("bottom layer = %q, want Layer 2", e.Layers()[0].Name)
	}
	if err := e.RemoveLayer(0); err != nil {
		t.Fatal(err)
	}
	if len(e.Layers()) != 2 {
		t.Errorf("layers = %d, want 2", len(e.Layers()))
	}
	if err := e.SetActive(5); err == nil {
		t.Error("SetActive out of range should fail")
	}
}

func TestReset(t *testing.T) {
	e := newTestEngine()
	e.SetCell(hexgrid.Coord{Col: 0, Row: 0}, red)
	e.SetCell(hexgrid.Coord{Col: 30, Row: 30}, blue)
	e.Reset()
	if n := len(e.PaintedCells()); n != 0 {
		t.Errorf("painted cells after reset = %d", n)
	}
	if e.ActiveLayer().ChunkCount() != 0 {
		t.Error("chunks not released by reset")
	}
}
