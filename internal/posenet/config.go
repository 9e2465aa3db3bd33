package posenet

import "rtpose/pkg/tensor"

// Fixed binding layout of the supported engines. The input name is not
// configurable: plans are produced with the image tensor named "image".
// Exposing it as configuration is a known gap inherited from the plan
// building pipeline; the output name, by contrast, is overridable.
const (
	numBindings      = 2
	inputBindingName = "image"

	// DefaultOutputName is the output binding name used when NetConfig
	// leaves OutputName empty.
	DefaultOutputName = "net_output"
)

// Fixed tensor geometry. Shapes are compile-time constants of the supported
// plans; dynamic shapes are out of scope. The output is a 57-channel map
// (body-part heatmaps plus part-affinity fields) at the usual spatial
// downsample of the input.
const (
	inputChannels = 3
	inputHeight   = 320
	inputWidth    = 240

	outputChannels = 57
	outputHeight   = 40
	outputWidth    = 30

	inputVolume  = 1 * inputChannels * inputHeight * inputWidth
	outputVolume = 1 * outputChannels * outputHeight * outputWidth

	floatBytes = 4
)

// InputDims returns the fixed input shape [batch, channel, height, width].
func InputDims() []int { return []int{1, inputChannels, inputHeight, inputWidth} }

// OutputDims returns the fixed output shape [batch, channel, height, width].
func OutputDims() []int { return []int{1, outputChannels, outputHeight, outputWidth} }

// NewInputTensor allocates a zero-filled tensor of the fixed input shape,
// handy for warm-up passes.
func NewInputTensor() *tensor.Tensor {
	return tensor.New(1, inputChannels, inputHeight, inputWidth)
}

// NetConfig encapsulates all tunables for Net construction.
type NetConfig struct {
	// PlanPath references the serialized engine plan. Must exist at
	// construction time.
	PlanPath string
	// GPUID selects the device index. Default 0.
	GPUID int
	// OutputName overrides the output binding name. Default
	// DefaultOutputName.
	OutputName string
	// DisableLogging suppresses runtime diagnostics and skips the
	// process-wide one-time log install.
	DisableLogging bool
}

// withDefaults returns cfg with unset fields replaced by package defaults.
func (cfg NetConfig) withDefaults() NetConfig {
	if cfg.OutputName == "" {
		cfg.OutputName = DefaultOutputName
	}
	return cfg
}
