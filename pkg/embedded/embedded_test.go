package embedded

import (
	"errors"
	"testing"
	"testing/fstest"
)

func TestReadFile(t *testing.T) {
	Init(fstest.MapFS{
		"data/spacewar.yaml": &fstest.MapFile{Data: []byte("window:\n  width: 640\n")},
	})

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"正常路径", "data/spacewar.yaml", false},
		{"带 ./ 前缀", "./data/spacewar.yaml", false},
		{"文件不存在", "data/missing.yaml", true},
		{"未知前缀", "assets/ship.png", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := ReadFile(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ReadFile(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if !tt.wantErr && len(data) == 0 {
				t.Error("expected file content")
			}
			if Exists(tt.path) == tt.wantErr {
				t.Errorf("Exists(%q) = %v", tt.path, !tt.wantErr)
			}
		})
	}
}

func TestNotInitialized(t *testing.T) {
	saved, savedInit := dataFS, initialized
	defer func() { dataFS, initialized = saved, savedInit }()
	initialized = false

	if _, err := ReadFile("data/spacewar.yaml"); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("ReadFile() error = %v, want ErrNotInitialized", err)
	}
	if Exists("data/spacewar.yaml") {
		t.Error("Exists() should be false before Init")
	}
}
