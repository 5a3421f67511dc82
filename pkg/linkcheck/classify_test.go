package linkcheck

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		rec      *LinkRecord
		expected RowClass
	}{
		{
			"external by scheme and host",
			&LinkRecord{Scheme: "https", Server: "example.com", Path: "/page"},
			RowClass{External: true},
		},
		{
			"external by port only",
			&LinkRecord{Port: "8080", Path: "/page"},
			RowClass{External: true},
		},
		{
			"external by user only",
			&LinkRecord{User: "deploy", Path: "/page"},
			RowClass{External: true},
		},
		{
			"in-page",
			&LinkRecord{Fragment: "setup"},
			RowClass{Internal: true, InPage: true},
		},
		{
			"cross-page",
			&LinkRecord{Path: "episodes/intro.md"},
			RowClass{Internal: true, CrossPage: true},
		},
		{
			"cross-page with fragment stays cross-page",
			&LinkRecord{Path: "intro.md", Fragment: "setup"},
			RowClass{Internal: true, CrossPage: true},
		},
		{
			"bare internal with neither path nor fragment",
			&LinkRecord{},
			RowClass{Internal: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(NewLinkTable(tt.rec))[0]
			if got != tt.expected {
				t.Errorf("Classify() = %+v, want %+v", got, tt.expected)
			}
		})
	}
}

func TestClassifyRefKey(t *testing.T) {
	table := NewLinkTable(
		&LinkRecord{Type: TypeRefLink, Rel: "my-key", Path: "target.md"},
		&LinkRecord{Type: TypeLink, Path: "my-key"},
		&LinkRecord{Type: TypeLink, Path: "other.md"},
	)

	classes := Classify(table)

	if classes[0].RefKey {
		t.Error("row 0: path does not collide with any key")
	}
	if !classes[1].RefKey {
		t.Error("row 1: path equals row 0's rel and must be flagged")
	}
	if classes[2].RefKey {
		t.Error("row 2: path does not collide with any key")
	}
}

func TestClassifyNil(t *testing.T) {
	if got := Classify(nil); got != nil {
		t.Errorf("Classify(nil) = %v, want nil", got)
	}
}
