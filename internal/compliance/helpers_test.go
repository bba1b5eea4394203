package compliance

import "github.com/melissa/door-compliance/internal/types"

// Test helpers shared across the rule test files.

func bptr(b bool) *bool {
	return &b
}

func fptr(f float64) *float64 {
	return &f
}

// onRoute returns a DoorParameters on an accessible route, ready for rule-specific
// fields to be filled in.
func onRoute() *types.DoorParameters {
	return &types.DoorParameters{IsOnAccessibleRoute: bptr(true)}
}

// violationsWithKey filters violations by code text key.
func violationsWithKey(violations []types.Violation, key types.CodeTextKey) []types.Violation {
	var out []types.Violation
	for _, v := range violations {
		if v.CodeText == key {
			out = append(out, v)
		}
	}
	return out
}

// violationsWithSection filters violations by code section.
func violationsWithSection(violations []types.Violation, section string) []types.Violation {
	var out []types.Violation
	for _, v := range violations {
		if v.CodeSection == section {
			out = append(out, v)
		}
	}
	return out
}
