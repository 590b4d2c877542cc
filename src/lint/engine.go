package lint

import (
	"maps"
	"slices"

	"github.com/rs/zerolog"

	"github.com/sofmeright/lintcompose/src/detect"
)

// Reason explains how a topic's enablement was decided.
type Reason string

const (
	ReasonExplicit    Reason = "explicit"
	ReasonDefault     Reason = "default"
	ReasonDetected    Reason = "detected"
	ReasonNotDetected Reason = "not detected"
)

// Decision is the resolved enablement of one topic.
type Decision struct {
	Topic   string
	Enabled bool
	Reason  Reason
	// Matched is the requirement that switched an auto-detected topic on.
	Matched detect.Requirement
	Options TopicOptions

	topic Topic
}

// Composer assembles the ordered fragment sequence.
type Composer struct {
	Env detect.Environment
	Log zerolog.Logger
}

// NewComposer creates a composer probing env for auto-detection.
func NewComposer(env detect.Environment, log zerolog.Logger) *Composer {
	return &Composer{Env: env, Log: log}
}

// Compose is shorthand for a silent composer.
func Compose(opts Options, env detect.Environment) []Fragment {
	return NewComposer(env, zerolog.Nop()).Compose(opts)
}

// Plan resolves every registered topic in priority order without building any.
func (c *Composer) Plan(opts Options) []Decision {
	for name := range opts.Topics {
		if !Known(name) {
			c.Log.Warn().Str("topic", name).Msg("ignoring toggle for unknown topic")
		}
	}

	names := All()
	decisions := make([]Decision, 0, len(names))
	for _, name := range names {
		t, err := Get(name)
		if err != nil {
			continue
		}
		decisions = append(decisions, c.decide(t, opts.Toggle(name)))
	}
	return decisions
}

func (c *Composer) decide(t Topic, tg Toggle) Decision {
	d := Decision{Topic: t.Name(), topic: t}

	if tg.IsSet() {
		d.Enabled = tg.Enabled()
		d.Reason = ReasonExplicit
		if d.Enabled {
			d.Options = tg.Options
		}
		return d
	}

	if reqs := t.AutoDetect(); len(reqs) > 0 {
		if matched, ok := detect.AnySatisfied(c.Env, reqs); ok {
			d.Enabled = true
			d.Reason = ReasonDetected
			d.Matched = matched
		} else {
			d.Reason = ReasonNotDetected
		}
		return d
	}

	d.Enabled = t.DefaultEnabled()
	d.Reason = ReasonDefault
	return d
}

// Compose builds the fragment sequence: enabled topics in priority order,
// then custom fragments, then the global override fragment. Topics that are
// not enabled are never built.
func (c *Composer) Compose(opts Options) []Fragment {
	var fragments []Fragment

	for _, d := range c.Plan(opts) {
		if !d.Enabled {
			c.Log.Debug().Str("topic", d.Topic).Str("reason", string(d.Reason)).Msg("topic skipped")
			continue
		}
		built := d.topic.Build(d.Options)
		c.Log.Debug().
			Str("topic", d.Topic).
			Str("reason", string(d.Reason)).
			Int("fragments", len(built)).
			Msg("topic enabled")
		fragments = append(fragments, built...)
	}

	for _, cc := range opts.CustomConfigs {
		fragments = append(fragments, customFragment(cc))
	}

	if len(opts.Overrides) > 0 {
		fragments = append(fragments, Fragment{
			Name:  NamePrefix + "/overrides",
			Rules: maps.Clone(opts.Overrides),
		})
	}

	return fragments
}

// customFragment copies only the fields the caller set.
func customFragment(cc CustomConfig) Fragment {
	return Fragment{
		Name:     NamePrefix + "/custom/" + cc.Name,
		Files:    slices.Clone(cc.Files),
		Ignores:  slices.Clone(cc.Ignores),
		Plugins:  maps.Clone(cc.Plugins),
		Settings: maps.Clone(cc.Settings),
		Rules:    maps.Clone(cc.Rules),
	}
}
