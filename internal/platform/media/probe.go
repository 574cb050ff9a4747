// Copyright (c) 2026 VidTube. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package media

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

// ErrNoDuration is returned when ffprobe reports no usable duration.
var ErrNoDuration = errors.New("media: ffprobe reported no duration")

// CommandRunner executes an external command and returns its stdout.
type CommandRunner func(ctx context.Context, binary string, args ...string) ([]byte, error)

// FFProbe reads container metadata through the ffprobe CLI.
type FFProbe struct {
	Binary  string
	Run     CommandRunner
	Timeout time.Duration
}

// NewFFProbe returns a prober using the given binary, defaulting to "ffprobe".
func NewFFProbe(binary string, timeout time.Duration) *FFProbe {
	if strings.TrimSpace(binary) == "" {
		binary = "ffprobe"
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &FFProbe{
		Binary:  binary,
		Run:     runCommand,
		Timeout: timeout,
	}
}

// Duration returns the media duration of the file in seconds.
func (probe *FFProbe) Duration(ctx context.Context, path string) (float64, error) {
	run := probe.Run
	if run == nil {
		run = runCommand
	}

	execCtx, cancel := context.WithTimeout(ctx, probe.Timeout)
	defer cancel()

	out, err := run(execCtx, probe.Binary,
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "json",
		path,
	)
	if err != nil {
		return 0, fmt.Errorf("media: ffprobe %s: %w", path, err)
	}

	var payload struct {
		Format struct {
			Duration string `json:"duration"`
		} `json:"format"`
	}
	if err := json.Unmarshal(out, &payload); err != nil {
		return 0, fmt.Errorf("media: parse ffprobe output: %w", err)
	}

	if payload.Format.Duration == "" {
		return 0, ErrNoDuration
	}

	seconds, err := strconv.ParseFloat(payload.Format.Duration, 64)
	if err != nil || seconds < 0 {
		return 0, ErrNoDuration
	}
	return seconds, nil
}

func runCommand(ctx context.Context, binary string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, binary, args...).Output()
}
