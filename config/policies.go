package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/heatpath/dijkstra"
)

var (
	// ErrNoPolicies indicates a policy file that defines nothing.
	ErrNoPolicies = errors.New("config: no policies defined")
	// ErrUnknownKey indicates a key the policy schema does not know.
	ErrUnknownKey = errors.New("config: unknown key in policy file")
)

// NamedPolicy is a run-length policy with the name it was declared under.
type NamedPolicy struct {
	Name string
	dijkstra.Policy
}

type policyFile struct {
	Policies map[string]dijkstra.Policy `toml:"policies"`
}

// DefaultPolicies returns the two standard policies, "short" and "long".
func DefaultPolicies() []NamedPolicy {
	return []NamedPolicy{
		{Name: "short", Policy: dijkstra.ShortHops},
		{Name: "long", Policy: dijkstra.LongRuns},
	}
}

// ParsePolicies decodes a TOML document of the form
//
//	[policies.short]
//	min_run = 1
//	max_run = 3
//
// and returns the policies sorted by name. Each policy is validated.
func ParsePolicies(r io.Reader) ([]NamedPolicy, error) {
	var pf policyFile
	md, err := toml.NewDecoder(r).Decode(&pf)
	if err != nil {
		return nil, fmt.Errorf("config: decode policies: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%w: %s", ErrUnknownKey, strings.Join(keys, ", "))
	}
	if len(pf.Policies) == 0 {
		return nil, ErrNoPolicies
	}

	out := make([]NamedPolicy, 0, len(pf.Policies))
	for name, p := range pf.Policies {
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("config: policy %q: %w", name, err)
		}
		out = append(out, NamedPolicy{Name: name, Policy: p})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out, nil
}

// LoadPolicies reads ParsePolicies input from path.
func LoadPolicies(path string) ([]NamedPolicy, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ParsePolicies(f)
}
