package main

import (
	"context"
	"fmt"
	"testing"

	treeerrors "github.com/matzehuels/treeview/pkg/errors"
	"github.com/matzehuels/treeview/pkg/layout"
)

func unknownLayout() error {
	_, err := layout.ParseStrategy("radial")
	return err
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"interrupt", fmt.Errorf("view: %w", context.Canceled), 130},
		{"bad tree", treeerrors.New(treeerrors.ErrCodeInvalidTree, "neither root nor level_order"), 2},
		{"unknown layout", unknownLayout(), 2},
		{"missing file", treeerrors.New(treeerrors.ErrCodeFileNotFound, "tree.toml"), 2},
		{"launch", treeerrors.New(treeerrors.ErrCodeLaunch, "no opener"), 1},
		{"plain", fmt.Errorf("boom"), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := exitCode(tt.err); got != tt.want {
				t.Errorf("exitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}
