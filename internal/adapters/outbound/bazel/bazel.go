package bazel

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/cppgm/styletools/internal/domain"
)

// Client implements domain.BuildQuerier by shelling out to `bazel info`.
type Client struct {
	Binary string
	// Dir is the directory bazel runs in; empty means the current directory.
	Dir string
}

func New(binary string) *Client {
	if binary == "" {
		binary = "bazel"
	}
	return &Client{Binary: binary}
}

// Info queries the execution root, binary output directory and workspace root.
func (c *Client) Info(ctx context.Context) (domain.BuildInfo, error) {
	var info domain.BuildInfo
	for _, q := range []struct {
		key string
		dst *string
	}{
		{"execution_root", &info.ExecutionRoot},
		{"bazel-bin", &info.BinDir},
		{"workspace", &info.Workspace},
	} {
		v, err := c.Query(ctx, q.key)
		if err != nil {
			return domain.BuildInfo{}, err
		}
		*q.dst = v
	}
	return info, nil
}

// Query returns the trimmed output of `bazel info <key>`.
func (c *Client) Query(ctx context.Context, key string) (string, error) {
	cmd := exec.CommandContext(ctx, c.Binary, "info", key)
	cmd.Dir = c.Dir
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return "", fmt.Errorf("%s info %s: %w: %s", c.Binary, key, err, msg)
		}
		return "", fmt.Errorf("%s info %s: %w", c.Binary, key, err)
	}
	return strings.TrimSpace(string(out)), nil
}
