package backend

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		want    Type
		wantErr bool
	}{
		{"glfw", GLFW, false},
		{"terminal", Terminal, false},
		{"headless", Headless, false},
		{"vulkan", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.name)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Expected error %v, got %v", tt.wantErr, err)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
			if !tt.wantErr && got.String() != tt.name {
				t.Errorf("Expected name %q, got %q", tt.name, got.String())
			}
		})
	}
}
