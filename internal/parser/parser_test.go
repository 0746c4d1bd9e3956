package parser

import (
	"context"
	"testing"

	"github.com/indaco/cargodex/internal/core"
)

func TestReader_Read(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantName string
		wantDesc string
		wantErr  bool
	}{
		{
			name:     "name and description",
			content:  "[package]\nname = \"alpha\"\ndescription = \"demo project\"\n",
			wantName: "alpha",
			wantDesc: "demo project",
		},
		{
			name:     "name only",
			content:  "[package]\nname = \"alpha\"\nversion = \"0.1.0\"\n",
			wantName: "alpha",
			wantDesc: "",
		},
		{
			name:     "non-string description is ignored",
			content:  "[package]\nname = \"alpha\"\ndescription = 42\n",
			wantName: "alpha",
			wantDesc: "",
		},
		{
			name:    "missing package table",
			content: "[dependencies]\nserde = \"1\"\n",
			wantErr: true,
		},
		{
			name:    "missing name",
			content: "[package]\ndescription = \"demo\"\n",
			wantErr: true,
		},
		{
			name:    "non-string name",
			content: "[package]\nname = 42\n",
			wantErr: true,
		},
		{
			name:    "empty name",
			content: "[package]\nname = \"\"\n",
			wantErr: true,
		},
		{
			name:    "invalid TOML",
			content: "[package\nname = \"broken\n",
			wantErr: true,
		},
		{
			name:    "package is not a table",
			content: "package = \"alpha\"\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := core.NewMockFileSystem()
			fs.SetFile("/rust/alpha/Cargo.toml", []byte(tt.content))

			r := NewReader(fs)
			m, err := r.Read(context.Background(), "/rust/alpha/Cargo.toml")

			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if m != nil {
					t.Errorf("expected nil manifest on error, got %+v", m)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if m.Name != tt.wantName {
				t.Errorf("Name = %q, want %q", m.Name, tt.wantName)
			}
			if m.Description != tt.wantDesc {
				t.Errorf("Description = %q, want %q", m.Description, tt.wantDesc)
			}
			if m.Dir != "/rust/alpha" {
				t.Errorf("Dir = %q, want %q", m.Dir, "/rust/alpha")
			}
		})
	}
}

func TestReader_Read_MissingFile(t *testing.T) {
	r := NewReader(core.NewMockFileSystem())

	if _, err := r.Read(context.Background(), "/rust/alpha/Cargo.toml"); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestReader_Read_EmptyPath(t *testing.T) {
	r := NewReader(core.NewMockFileSystem())

	if _, err := r.Read(context.Background(), ""); err == nil {
		t.Fatal("expected error for empty path")
	}
}
