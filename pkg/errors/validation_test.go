package errors

import "testing"

func TestValidateChannelName(t *testing.T) {
	tests := []struct {
		name    string
		channel string
		wantErr bool
	}{
		{"absolute", "/chatter", false},
		{"nested", "/sensors/lidar/scan", false},
		{"relative", "chatter", false},
		{"private", "~/status", false},
		{"empty", "", true},
		{"double slash", "/a//b", true},
		{"trailing slash", "/a/", true},
		{"spaces", "/a b", true},
		{"control chars", "/a\x01b", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateChannelName(tt.channel)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateChannelName(%q) error = %v, wantErr %v", tt.channel, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidSnapshot) {
				t.Errorf("code = %v, want %v", GetCode(err), ErrCodeInvalidSnapshot)
			}
		})
	}
}

func TestValidateNamespace(t *testing.T) {
	tests := []struct {
		name    string
		ns      string
		wantErr bool
	}{
		{"root", "", false},
		{"slash root", "/", false},
		{"simple", "/demo", false},
		{"nested", "/a/b", false},
		{"relative", "demo", true},
		{"trailing slash", "/demo/", true},
		{"double slash", "/a//b", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ValidateNamespace(tt.ns); (err != nil) != tt.wantErr {
				t.Errorf("ValidateNamespace(%q) error = %v, wantErr %v", tt.ns, err, tt.wantErr)
			}
		})
	}
}

func TestValidateNodeName(t *testing.T) {
	tests := []struct {
		name     string
		nodeName string
		wantErr  bool
	}{
		{"simple", "talker", false},
		{"hidden", "_ros2cli_daemon", false},
		{"empty", "", true},
		{"with namespace", "/demo/talker", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ValidateNodeName(tt.nodeName); (err != nil) != tt.wantErr {
				t.Errorf("ValidateNodeName(%q) error = %v, wantErr %v", tt.nodeName, err, tt.wantErr)
			}
		})
	}
}
