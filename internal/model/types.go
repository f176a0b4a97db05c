package model

// Tensor layouts supported by the preprocessing step.
const (
	LayoutNHWC = "NHWC"
	LayoutNCHW = "NCHW"
)

const (
	defaultImageSize  = 224
	defaultInputName  = "input"
	defaultOutputName = "output"
)

type Metadata struct {
	InputShape  []int64  `json:"input_shape"`
	OutputShape []int64  `json:"output_shape"`
	Classes     []string `json:"classes"`
	ImageSize   int      `json:"image_size"`
	Layout      string   `json:"layout"`
	InputName   string   `json:"input_name"`
	OutputName  string   `json:"output_name"`
}

type PredictionRequest struct {
	Image []float32 `json:"image" validate:"required"`
}

// Prediction is the argmax-mapped output of a single inference run.
type Prediction struct {
	Index      int                `json:"index"`
	Class      string             `json:"class"`
	Confidence float32            `json:"confidence"`
	Scores     map[string]float32 `json:"scores"`
}
