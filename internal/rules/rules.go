// Package rules loads optional YAML ruleset overrides for the path policy.
package rules

import (
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/ancients-collective/privsift/internal/policy"
)

// maxRulesFileBytes bounds how much of a ruleset file is read (1 MB).
const maxRulesFileBytes int64 = 1 << 20

// overrides is the YAML file schema. Every list is optional; an omitted
// list keeps the built-in default, a present list replaces it wholesale.
type overrides struct {
	StandardTopLevel []string `yaml:"standard_top_level"`
	TrustedPrefixes  []string `yaml:"trusted_prefixes" validate:"omitempty,dive,startswith=/"`
	TempDirs         []string `yaml:"temp_dirs" validate:"omitempty,dive,startswith=/"`
	SuidAllow        []string `yaml:"suid_allow" validate:"omitempty,dive,startswith=/"`
	SgidAllow        []string `yaml:"sgid_allow" validate:"omitempty,dive,startswith=/"`
}

// Load reads a YAML ruleset file and merges it onto the built-in defaults.
// The merged result is validated before use so a bad rules file fails the
// run loudly instead of silently weakening a scan.
func Load(path string) (policy.Ruleset, error) {
	base := policy.DefaultRuleset()

	f, err := os.Open(path)
	if err != nil {
		return base, fmt.Errorf("cannot open rules file %q: %w", path, err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxRulesFileBytes+1))
	if err != nil {
		return base, fmt.Errorf("cannot read rules file %q: %w", path, err)
	}
	if int64(len(data)) > maxRulesFileBytes {
		return base, fmt.Errorf("rules file %q too large (max %d bytes)", path, maxRulesFileBytes)
	}

	var o overrides
	if err := yaml.Unmarshal(data, &o); err != nil {
		return base, fmt.Errorf("invalid YAML in %q: %w", path, err)
	}

	merged := merge(base, o)
	if err := Validate(merged); err != nil {
		return base, fmt.Errorf("invalid rules in %q: %w", path, err)
	}
	return merged, nil
}

// Validate checks a ruleset against its struct constraints.
func Validate(r policy.Ruleset) error {
	v := validator.New()
	if err := v.Struct(r); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
			e := verrs[0]
			return fmt.Errorf("field %s failed %q validation", e.Field(), e.Tag())
		}
		return err
	}
	return nil
}

func merge(base policy.Ruleset, o overrides) policy.Ruleset {
	if len(o.StandardTopLevel) > 0 {
		base.StandardTopLevel = o.StandardTopLevel
	}
	if len(o.TrustedPrefixes) > 0 {
		base.TrustedPrefixes = o.TrustedPrefixes
	}
	if len(o.TempDirs) > 0 {
		base.TempDirs = o.TempDirs
	}
	if len(o.SuidAllow) > 0 {
		base.SuidAllow = o.SuidAllow
	}
	if len(o.SgidAllow) > 0 {
		base.SgidAllow = o.SgidAllow
	}
	return base
}
