package loop

import "testing"

func TestConfigValidate(t *testing.T) {
	valid := Config{
		Prompt:            "Build X",
		MinIterations:     1,
		MaxIterations:     0,
		CompletionPromise: DefaultCompletionPromise,
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{
			name:   "valid unbounded",
			mutate: func(c *Config) {},
		},
		{
			name:   "valid bounded",
			mutate: func(c *Config) { c.MinIterations = 2; c.MaxIterations = 5 },
		},
		{
			name:   "min equal to max",
			mutate: func(c *Config) { c.MinIterations = 3; c.MaxIterations = 3 },
		},
		{
			name:    "empty prompt",
			mutate:  func(c *Config) { c.Prompt = "" },
			wantErr: true,
		},
		{
			name:    "whitespace prompt",
			mutate:  func(c *Config) { c.Prompt = "   \n" },
			wantErr: true,
		},
		{
			name:    "zero min iterations",
			mutate:  func(c *Config) { c.MinIterations = 0 },
			wantErr: true,
		},
		{
			name:    "negative max iterations",
			mutate:  func(c *Config) { c.MaxIterations = -1 },
			wantErr: true,
		},
		{
			name:    "empty completion promise",
			mutate:  func(c *Config) { c.CompletionPromise = " " },
			wantErr: true,
		},
		{
			name:    "min above positive max",
			mutate:  func(c *Config) { c.MinIterations = 5; c.MaxIterations = 3 },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
