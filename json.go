package assemblers

import (
	"fmt"

	"github.com/goccy/go-json"
)

// convert serializes the input to JSON and deserializes it into the target output.
// This is a lossy mapping if source and destination do not have compatible JSON structures.
func convert[Input any, Output any](input Input, output *Output) error {
	data, err := json.Marshal(input)
	if err != nil {
		return fmt.Errorf("assemblers: marshal failed: %w", err)
	}
	if err = json.Unmarshal(data, output); err != nil {
		return fmt.Errorf("assemblers: unmarshal failed: %w", err)
	}
	return nil
}

// JSON populates resources with a JSON round-trip of the source. Source and resource must share
// their JSON field names; prefer an explicit populator for nested or non-aligned structures.
func JSON[S, T any]() Populator[S, T] {
	return PopulateFunc[S, T](func(src *S, dst *T) error {
		return convert(src, dst)
	})
}
