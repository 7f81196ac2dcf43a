package record

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		recName string
		area    string
		cost    float64
		wantErr error
	}{
		{"valid", "Bridge", "Civil", 1500.0, nil},
		{"zero cost", "Bridge", "Civil", 0, nil},
		{"empty name", "", "Civil", 1500.0, ErrEmptyName},
		{"empty area", "Bridge", "", 1500.0, ErrEmptyArea},
		{"negative cost", "Bridge", "Civil", -1, ErrNegativeCost},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := New(tt.recName, tt.area, tt.cost)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("New() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr != nil {
				if !errors.Is(err, ErrInvalidRecord) {
					t.Errorf("New() error = %v, want wrapped ErrInvalidRecord", err)
				}
				return
			}
			if rec.Name() != tt.recName || rec.Area() != tt.area || rec.Cost() != tt.cost {
				t.Errorf("New() = (%q, %q, %v), want (%q, %q, %v)",
					rec.Name(), rec.Area(), rec.Cost(), tt.recName, tt.area, tt.cost)
			}
		})
	}
}

func TestSettersLeaveRecordUnchangedOnError(t *testing.T) {
	rec, err := New("Bridge", "Civil", 1500.0)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	if err := rec.SetName(""); !errors.Is(err, ErrEmptyName) {
		t.Errorf("SetName(\"\") error = %v, want ErrEmptyName", err)
	}
	if err := rec.SetArea(""); !errors.Is(err, ErrEmptyArea) {
		t.Errorf("SetArea(\"\") error = %v, want ErrEmptyArea", err)
	}
	if err := rec.SetCost(-0.01); !errors.Is(err, ErrNegativeCost) {
		t.Errorf("SetCost(-0.01) error = %v, want ErrNegativeCost", err)
	}

	if rec.Name() != "Bridge" || rec.Area() != "Civil" || rec.Cost() != 1500.0 {
		t.Errorf("record mutated by failed setters: (%q, %q, %v)",
			rec.Name(), rec.Area(), rec.Cost())
	}
}

func TestSetters(t *testing.T) {
	rec, err := New("Bridge", "Civil", 1500.0)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	if err := rec.SetName("Tunnel"); err != nil {
		t.Fatalf("SetName failed: %v", err)
	}
	if err := rec.SetArea("Infrastructure"); err != nil {
		t.Fatalf("SetArea failed: %v", err)
	}
	if err := rec.SetCost(3000.0); err != nil {
		t.Fatalf("SetCost failed: %v", err)
	}

	if rec.Name() != "Tunnel" || rec.Area() != "Infrastructure" || rec.Cost() != 3000.0 {
		t.Errorf("record = (%q, %q, %v), want (Tunnel, Infrastructure, 3000)",
			rec.Name(), rec.Area(), rec.Cost())
	}
}

func TestEqual(t *testing.T) {
	a, _ := New("Bridge", "Civil", 1500.0)
	b, _ := New("Bridge", "Commercial", 9000.0)
	c, _ := New("Tunnel", "Civil", 1500.0)

	if !a.Equal(b) {
		t.Error("records with the same name should be equal regardless of area/cost")
	}
	if a.Equal(c) {
		t.Error("records with different names should not be equal")
	}
	if a.Equal(nil) {
		t.Error("record should not equal nil")
	}
}

func TestSortByCost(t *testing.T) {
	tunnel, _ := New("Tunnel", "Civil", 3000.0)
	bridge, _ := New("Bridge", "Civil", 1500.0)
	tower, _ := New("Tower", "Commercial", 2000.0)

	recs := []*Record{tunnel, bridge, tower}
	SortByCost(recs)

	want := []string{"Bridge", "Tower", "Tunnel"}
	for i, name := range want {
		if recs[i].Name() != name {
			t.Errorf("SortByCost()[%d] = %q, want %q", i, recs[i].Name(), name)
		}
	}
}

func TestSortByName(t *testing.T) {
	tunnel, _ := New("Tunnel", "Civil", 3000.0)
	bridge, _ := New("Bridge", "Civil", 1500.0)
	tower, _ := New("Tower", "Commercial", 2000.0)

	recs := []*Record{tunnel, bridge, tower}
	SortByName(recs)

	want := []string{"Bridge", "Tower", "Tunnel"}
	for i, name := range want {
		if recs[i].Name() != name {
			t.Errorf("SortByName()[%d] = %q, want %q", i, recs[i].Name(), name)
		}
	}
}

func TestString(t *testing.T) {
	rec, _ := New("Bridge", "Civil", 1500.0)
	want := "Project{name='Bridge', area='Civil', cost=1500.00}"
	if got := rec.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
