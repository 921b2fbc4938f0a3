package dotenv

// config holds the behavior toggles of a resolve pass.
type config struct {
	env          Environment
	override     bool
	interpolate  bool
	expandSingle bool
}

// Option configures a resolve pass.
type Option func(config) config

func makeConfig(opts ...Option) config {
	cfg := config{override: true, interpolate: true}
	for _, opt := range opts {
		cfg = opt(cfg)
	}
	if cfg.env == nil {
		cfg.env = OSEnvironment()
	}
	return cfg
}

// WithEnvironment sets the environment snapshot consulted during
// expansion. The default is [OSEnvironment].
func WithEnvironment(env Environment) Option {
	return func(cfg config) config {
		cfg.env = env
		return cfg
	}
}

// WithOverride selects which side wins a name lookup when both the
// document and the environment define it: true (the default) prefers
// the document, false prefers the environment.
func WithOverride(enable bool) Option {
	return func(cfg config) config {
		cfg.override = enable
		return cfg
	}
}

// WithInterpolate enables or disables ${...} expansion. When disabled,
// values carry their segment text verbatim. The default is enabled.
func WithInterpolate(enable bool) Option {
	return func(cfg config) config {
		cfg.interpolate = enable
		return cfg
	}
}

// WithExpandSingleQuoted expands ${...} references inside single-quoted
// segments, which are otherwise literal. The default is disabled.
func WithExpandSingleQuoted(enable bool) Option {
	return func(cfg config) config {
		cfg.expandSingle = enable
		return cfg
	}
}
