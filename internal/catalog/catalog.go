// Package catalog provides the step catalog and narration script for the
// unlock demo.
package catalog

import (
	"fmt"
	"time"
)

// Step describes one stage of the unlock ceremony.
type Step struct {
	ID          string `yaml:"id"`
	Title       string `yaml:"title"`
	Description string `yaml:"description,omitempty"`
	DurationMs  int    `yaml:"duration_ms"`
	Highlight   string `yaml:"highlight,omitempty"`
}

// Duration returns the step delay.
func (s Step) Duration() time.Duration {
	return time.Duration(s.DurationMs) * time.Millisecond
}

// Catalog is an ordered, immutable set of unlock steps.
type Catalog struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	Steps       []Step `yaml:"steps"`
	Source      string // file path or "builtin"
}

// Len returns the number of steps.
func (c *Catalog) Len() int {
	return len(c.Steps)
}

// TotalDuration returns the sum of all step delays.
func (c *Catalog) TotalDuration() time.Duration {
	var total time.Duration
	for _, step := range c.Steps {
		total += step.Duration()
	}
	return total
}

// Scaled returns a copy of the catalog with every duration divided by speed.
// Durations never drop below one millisecond.
func (c *Catalog) Scaled(speed float64) *Catalog {
	out := *c
	out.Steps = make([]Step, len(c.Steps))
	copy(out.Steps, c.Steps)
	if speed <= 0 {
		return &out
	}
	for i := range out.Steps {
		scaled := int(float64(out.Steps[i].DurationMs) / speed)
		if scaled < 1 {
			scaled = 1
		}
		out.Steps[i].DurationMs = scaled
	}
	return &out
}

func validate(c *Catalog) error {
	if c.Name == "" {
		return fmt.Errorf("catalog name is required")
	}
	if len(c.Steps) == 0 {
		return fmt.Errorf("catalog steps are required")
	}

	seen := make(map[string]struct{}, len(c.Steps))
	for i, step := range c.Steps {
		if step.ID == "" {
			return fmt.Errorf("step %d: id is required", i+1)
		}
		if _, exists := seen[step.ID]; exists {
			return fmt.Errorf("step %d: duplicate id %q", i+1, step.ID)
		}
		seen[step.ID] = struct{}{}
		if step.Title == "" {
			return fmt.Errorf("step %d: title is required", i+1)
		}
		if step.DurationMs <= 0 {
			return fmt.Errorf("step %d: duration must be a positive number of milliseconds", i+1)
		}
	}
	return nil
}
