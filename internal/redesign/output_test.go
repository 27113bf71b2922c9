package redesign

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func Test_annotation(t *testing.T) {
	type args struct {
		ori     Region
		allowed map[string]bool
	}
	tests := []struct {
		name string
		args args
		want string
	}{
		{
			"sorted allowed sites",
			args{
				ori:     Region{10, 110},
				allowed: map[string]bool{"EcoRI": true, "BamHI": true},
			},
			"Modified plasmid | ORI:10-110 | Allowed sites: BamHI,EcoRI",
		},
		{
			"no allowed sites",
			args{
				ori:     Region{0, 100},
				allowed: map[string]bool{},
			},
			"Modified plasmid | ORI:0-100 | Allowed sites: ",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := annotation(tt.args.ori, tt.args.allowed); got != tt.want {
				t.Errorf("annotation() = %v, want %v", got, tt.want)
			}
		})
	}
}

func Test_write(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.fa")

	seq := strings.Repeat("A", 70) + strings.Repeat("G", 20)
	p := &Plasmid{
		ID:          "pUC19",
		Description: "Modified plasmid | ORI:0-50 | Allowed sites: EcoRI",
		Seq:         seq,
	}

	if err := write(path, p); err != nil {
		t.Fatal(err)
	}

	dat, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(string(dat), "\n"), "\n")

	if lines[0] != ">pUC19 Modified plasmid | ORI:0-50 | Allowed sites: EcoRI" {
		t.Errorf("write() header = %v", lines[0])
	}
	if len(lines[1]) != fastaLineLength {
		t.Errorf("write() first sequence line is %d long, want %d", len(lines[1]), fastaLineLength)
	}

	// round trip through the reader
	back, err := read(path)
	if err != nil {
		t.Fatal(err)
	}
	if back.Seq != seq {
		t.Errorf("read(write()) seq = %v, want %v", back.Seq, seq)
	}
	if back.ID != p.ID {
		t.Errorf("read(write()) ID = %v, want %v", back.ID, p.ID)
	}
}
