/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"strings"
	"testing"
)

func TestRunCompare(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		want      string
		wantError bool
		errMsg    string
	}{
		{
			name: "less than",
			args: []string{"1.2.3", "1.3.0"},
			want: "<",
		},
		{
			name: "greater than",
			args: []string{"2.0.0", "1.9.9"},
			want: ">",
		},
		{
			name: "equal",
			args: []string{"1.0.0", "1.0.0"},
			want: "=",
		},
		{
			name: "build metadata ignored",
			args: []string{"1.0.0+linux", "1.0.0+darwin"},
			want: "=",
		},
		{
			name: "prerelease before release",
			args: []string{"1.0.0-rc.1", "1.0.0"},
			want: "<",
		},
		{
			name: "numeric prerelease before alphanumeric",
			args: []string{"1.0.0-11", "1.0.0-alpha"},
			want: "<",
		},
		{
			name:      "too few arguments",
			args:      []string{"1.0.0"},
			wantError: true,
			errMsg:    "exactly 2 arguments",
		},
		{
			name:      "too many arguments",
			args:      []string{"1.0.0", "2.0.0", "3.0.0"},
			wantError: true,
			errMsg:    "exactly 2 arguments",
		},
		{
			name:      "malformed first version",
			args:      []string{"1.2", "1.0.0"},
			wantError: true,
			errMsg:    "invalid version",
		},
		{
			name:      "malformed second version",
			args:      []string{"1.0.0", "01.2.3"},
			wantError: true,
			errMsg:    "invalid version",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := runCompare(tt.args)
			if tt.wantError {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !strings.Contains(err.Error(), tt.errMsg) {
					t.Errorf("error = %q, want it to contain %q", err.Error(), tt.errMsg)
				}
				return
			}
			if err != nil {
				t.Fatalf("runCompare(%v) failed: %v", tt.args, err)
			}
			if got != tt.want {
				t.Errorf("runCompare(%v) = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}
