// Package detect answers "is package X part of this project" for topic
// auto-detection.
package detect

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// Environment is the dependency presence oracle the composer consults.
// Implementations must be read-only and idempotent.
type Environment interface {
	// Has reports whether the package is declared or installed.
	Has(pkg string) bool

	// Version returns the package's resolved version, if one is known.
	Version(pkg string) (*semver.Version, bool)
}

// Requirement is a package, optionally constrained to a version range.
type Requirement struct {
	Package    string
	Constraint string
}

// Require builds an unconstrained requirement.
func Require(pkg string) Requirement { return Requirement{Package: pkg} }

func (r Requirement) String() string {
	if r.Constraint == "" {
		return r.Package
	}
	return fmt.Sprintf("%s@%s", r.Package, r.Constraint)
}

// Satisfied reports whether env has the package and, when a constraint is
// set and a version is known, whether the version falls in range. A present
// package with an unknown version satisfies any constraint.
func (r Requirement) Satisfied(env Environment) bool {
	if env == nil || !env.Has(r.Package) {
		return false
	}
	if r.Constraint == "" {
		return true
	}
	c, err := semver.NewConstraint(r.Constraint)
	if err != nil {
		return false
	}
	v, ok := env.Version(r.Package)
	if !ok {
		return true
	}
	return c.Check(v)
}

// AnySatisfied reports whether at least one requirement holds.
func AnySatisfied(env Environment, reqs []Requirement) (Requirement, bool) {
	for _, r := range reqs {
		if r.Satisfied(env) {
			return r, true
		}
	}
	return Requirement{}, false
}

// Static is a fixed environment: package name to version ("" when unknown).
type Static map[string]string

// Assume builds a Static environment with unknown versions.
func Assume(pkgs ...string) Static {
	s := make(Static, len(pkgs))
	for _, p := range pkgs {
		s[p] = ""
	}
	return s
}

func (s Static) Has(pkg string) bool {
	_, ok := s[pkg]
	return ok
}

func (s Static) Version(pkg string) (*semver.Version, bool) {
	raw, ok := s[pkg]
	if !ok || raw == "" {
		return nil, false
	}
	v, err := semver.NewVersion(raw)
	if err != nil {
		return nil, false
	}
	return v, true
}

// Layered consults each environment in turn; the first that has the package wins.
type Layered []Environment

func (l Layered) Has(pkg string) bool {
	for _, env := range l {
		if env != nil && env.Has(pkg) {
			return true
		}
	}
	return false
}

func (l Layered) Version(pkg string) (*semver.Version, bool) {
	for _, env := range l {
		if env != nil && env.Has(pkg) {
			return env.Version(pkg)
		}
	}
	return nil, false
}
