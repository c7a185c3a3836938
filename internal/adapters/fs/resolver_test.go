package fs_test

import (
	"testing"

	"github.com/concord-tools/concord/internal/adapters/fs"
	"github.com/stretchr/testify/assert"
)

func TestResolver_Absolute(t *testing.T) {
	r := fs.NewResolver()

	tests := []struct {
		name string
		base string
		path string
		want string
	}{
		{
			name: "relative path joined with base",
			base: "/ws/pkg",
			path: "lib",
			want: "/ws/pkg/lib",
		},
		{
			name: "parent traversal is normalized",
			base: "/ws/pkg",
			path: "../other/lib",
			want: "/ws/other/lib",
		},
		{
			name: "absolute path is cleaned and returned",
			base: "/ws/pkg",
			path: "/elsewhere//lib/.",
			want: "/elsewhere/lib",
		},
		{
			name: "dot path resolves to base",
			base: "/ws/pkg",
			path: ".",
			want: "/ws/pkg",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Absolute(tt.base, tt.path))
		})
	}
}

func TestResolver_Contains(t *testing.T) {
	r := fs.NewResolver()

	tests := []struct {
		name string
		root string
		path string
		want bool
	}{
		{
			name: "path inside root",
			root: "/ws/app",
			path: "/ws/app/src/main.go",
			want: true,
		},
		{
			name: "path equals root",
			root: "/ws/app",
			path: "/ws/app",
			want: true,
		},
		{
			name: "path outside root",
			root: "/ws/app",
			path: "/ws/other",
			want: false,
		},
		{
			name: "sibling with shared prefix is not contained",
			root: "/ws/app",
			path: "/ws/app-extras/lib",
			want: false,
		},
		{
			name: "unclean inputs are normalized first",
			root: "/ws/app/",
			path: "/ws/app/./lib",
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Contains(tt.root, tt.path))
		})
	}
}
