package vllm

import (
	"errors"

	"github.com/kbukum/vllm/util"
	"github.com/kbukum/vllm/validation"
)

// Params holds generation parameters for the completion endpoint. Every
// field is optional; nil fields fall back to the instance defaults when used
// as per-call overrides, and are omitted from the payload entirely when they
// have no default either.
//
// Each numeric field carries an inclusive valid range. Values outside their
// range are rejected at client construction and at call time, listing every
// offending field in a single ValidationError.
type Params struct {
	// Temperature controls sampling randomness. Range [0, 2].
	Temperature *float64 `json:"temperature,omitempty" validate:"omitnil,gte=0,lte=2" mapstructure:"temperature"`

	// TopP is the nucleus sampling probability mass. Range [0, 1].
	TopP *float64 `json:"top_p,omitempty" validate:"omitnil,gte=0,lte=1" mapstructure:"top_p"`

	// TopK restricts sampling to the K most likely tokens. Range [1, 100].
	TopK *int `json:"top_k,omitempty" validate:"omitnil,gte=1,lte=100" mapstructure:"top_k"`

	// MinP filters tokens below a probability floor. Range [0, 1].
	MinP *float64 `json:"min_p,omitempty" validate:"omitnil,gte=0,lte=1" mapstructure:"min_p"`

	// MaxTokens bounds the generated length. Range [1, 4096].
	MaxTokens *int `json:"max_tokens,omitempty" validate:"omitnil,gte=1,lte=4096" mapstructure:"max_tokens"`

	// RepetitionPenalty discourages repeated tokens. Range [0.1, 2].
	RepetitionPenalty *float64 `json:"repetition_penalty,omitempty" validate:"omitnil,gte=0.1,lte=2" mapstructure:"repetition_penalty"`

	// FrequencyPenalty penalizes tokens by occurrence count. Range [-2, 2].
	FrequencyPenalty *float64 `json:"frequency_penalty,omitempty" validate:"omitnil,gte=-2,lte=2" mapstructure:"frequency_penalty"`

	// PresencePenalty penalizes tokens that already appeared. Range [-2, 2].
	PresencePenalty *float64 `json:"presence_penalty,omitempty" validate:"omitnil,gte=-2,lte=2" mapstructure:"presence_penalty"`

	// Stop lists strings that terminate generation. Omitted when empty.
	Stop []string `json:"stop,omitempty" mapstructure:"stop"`

	// StopTokenIDs lists token ids that terminate generation.
	StopTokenIDs []int `json:"stop_token_ids,omitempty" mapstructure:"stop_token_ids"`

	// UseBeamSearch enables beam search instead of sampling.
	UseBeamSearch *bool `json:"use_beam_search,omitempty" mapstructure:"use_beam_search"`

	// BestOf generates this many candidates server-side. Range [1, 20].
	BestOf *int `json:"best_of,omitempty" validate:"omitnil,gte=1,lte=20" mapstructure:"best_of"`

	// N is the number of completions to return. Range [1, 10].
	N *int `json:"n,omitempty" validate:"omitnil,gte=1,lte=10" mapstructure:"n"`

	// LengthPenalty biases beam scoring by length. Range [0.1, 2].
	LengthPenalty *float64 `json:"length_penalty,omitempty" validate:"omitnil,gte=0.1,lte=2" mapstructure:"length_penalty"`

	// EarlyStopping stops beam search once candidates are final.
	EarlyStopping *bool `json:"early_stopping,omitempty" mapstructure:"early_stopping"`

	// Seed fixes the sampling seed for reproducible output.
	Seed *int `json:"seed,omitempty" mapstructure:"seed"`

	// Logprobs requests log probabilities for this many tokens. Range [0, 20].
	Logprobs *int `json:"logprobs,omitempty" validate:"omitnil,gte=0,lte=20" mapstructure:"logprobs"`

	// Echo includes the prompt in the completion output.
	Echo *bool `json:"echo,omitempty" mapstructure:"echo"`

	// SkipSpecialTokens strips special tokens from the output.
	SkipSpecialTokens *bool `json:"skip_special_tokens,omitempty" mapstructure:"skip_special_tokens"`

	// SpacesBetweenSpecialTokens inserts spaces around special tokens.
	SpacesBetweenSpecialTokens *bool `json:"spaces_between_special_tokens,omitempty" mapstructure:"spaces_between_special_tokens"`
}

// DefaultParams returns the instance defaults applied when neither the
// client configuration nor the per-call overrides set a parameter. Seed and
// Logprobs have no default and stay absent; Stop and StopTokenIDs likewise.
func DefaultParams() Params {
	return Params{
		Temperature:                util.Ptr(0.7),
		TopP:                       util.Ptr(0.9),
		TopK:                       util.Ptr(50),
		MinP:                       util.Ptr(0.0),
		MaxTokens:                  util.Ptr(512),
		RepetitionPenalty:          util.Ptr(1.1),
		FrequencyPenalty:           util.Ptr(0.0),
		PresencePenalty:            util.Ptr(0.0),
		UseBeamSearch:              util.Ptr(false),
		BestOf:                     util.Ptr(1),
		N:                          util.Ptr(1),
		LengthPenalty:              util.Ptr(1.0),
		EarlyStopping:              util.Ptr(false),
		Echo:                       util.Ptr(false),
		SkipSpecialTokens:          util.Ptr(true),
		SpacesBetweenSpecialTokens: util.Ptr(true),
	}
}

// Merge returns a copy of p with every non-nil field of overrides applied on
// top. Neither receiver nor argument is mutated. It is how per-call
// overrides layer over instance defaults, and how presets combine with
// explicit tweaks.
func (p Params) Merge(overrides *Params) Params {
	if overrides == nil {
		return p
	}
	out := p
	if overrides.Temperature != nil {
		out.Temperature = overrides.Temperature
	}
	if overrides.TopP != nil {
		out.TopP = overrides.TopP
	}
	if overrides.TopK != nil {
		out.TopK = overrides.TopK
	}
	if overrides.MinP != nil {
		out.MinP = overrides.MinP
	}
	if overrides.MaxTokens != nil {
		out.MaxTokens = overrides.MaxTokens
	}
	if overrides.RepetitionPenalty != nil {
		out.RepetitionPenalty = overrides.RepetitionPenalty
	}
	if overrides.FrequencyPenalty != nil {
		out.FrequencyPenalty = overrides.FrequencyPenalty
	}
	if overrides.PresencePenalty != nil {
		out.PresencePenalty = overrides.PresencePenalty
	}
	if overrides.Stop != nil {
		out.Stop = overrides.Stop
	}
	if overrides.StopTokenIDs != nil {
		out.StopTokenIDs = overrides.StopTokenIDs
	}
	if overrides.UseBeamSearch != nil {
		out.UseBeamSearch = overrides.UseBeamSearch
	}
	if overrides.BestOf != nil {
		out.BestOf = overrides.BestOf
	}
	if overrides.N != nil {
		out.N = overrides.N
	}
	if overrides.LengthPenalty != nil {
		out.LengthPenalty = overrides.LengthPenalty
	}
	if overrides.EarlyStopping != nil {
		out.EarlyStopping = overrides.EarlyStopping
	}
	if overrides.Seed != nil {
		out.Seed = overrides.Seed
	}
	if overrides.Logprobs != nil {
		out.Logprobs = overrides.Logprobs
	}
	if overrides.Echo != nil {
		out.Echo = overrides.Echo
	}
	if overrides.SkipSpecialTokens != nil {
		out.SkipSpecialTokens = overrides.SkipSpecialTokens
	}
	if overrides.SpacesBetweenSpecialTokens != nil {
		out.SpacesBetweenSpecialTokens = overrides.SpacesBetweenSpecialTokens
	}
	return out
}

// applyDefaults fills nil fields from DefaultParams.
func (p Params) applyDefaults() Params {
	return DefaultParams().Merge(&p)
}

// validateParams checks a parameter set against the declared ranges,
// collecting every offending field into one ValidationError.
func validateParams(p *Params) error {
	err := validation.Struct(p)
	if err == nil {
		return nil
	}

	var verr *validation.Error
	if errors.As(err, &verr) {
		return &ValidationError{Fields: verr.Fields}
	}
	return &ValidationError{Fields: []validation.FieldError{{Field: "params", Message: err.Error()}}}
}

// completionRequest is the wire payload for POST /v1/completions. Field
// order is fixed so identical inputs marshal to identical bytes.
type completionRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
	Params
}

// completionChoice is one generated candidate in a response or stream frame.
type completionChoice struct {
	Text         string `json:"text"`
	Index        int    `json:"index"`
	FinishReason string `json:"finish_reason"`
}

// completionResponse is the response body of the completion endpoint. The
// same shape is used for buffered responses and individual stream frames.
type completionResponse struct {
	ID      string             `json:"id"`
	Model   string             `json:"model"`
	Choices []completionChoice `json:"choices"`
}
