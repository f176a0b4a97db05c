package model

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"

	ort "github.com/yalue/onnxruntime_go"
)

var ErrInputSize = errors.New("input size does not match model")

// Server owns one ONNX Runtime session and its fixed input/output tensors.
// Predict is safe for concurrent use; runs are serialized because the
// tensors are shared.
type Server struct {
	mu           sync.Mutex
	session      *ort.AdvancedSession
	metadata     Metadata
	inputTensor  *ort.Tensor[float32]
	outputTensor *ort.Tensor[float32]
}

func NewServer(modelPath string, metadata Metadata, libraryPath string) (*Server, error) {
	if err := metadata.Validate(); err != nil {
		return nil, err
	}

	info, err := os.Stat(modelPath)
	if err != nil {
		return nil, fmt.Errorf("model file %s: %w", modelPath, err)
	}
	if info.IsDir() || info.Size() == 0 {
		return nil, fmt.Errorf("model file %s is not a usable ONNX file", modelPath)
	}

	if libraryPath != "" {
		ort.SetSharedLibraryPath(libraryPath)
	}
	if err := ort.InitializeEnvironment(); err != nil {
		return nil, fmt.Errorf("initialize ONNX environment: %w", err)
	}

	s := &Server{metadata: metadata}
	if err := s.open(modelPath); err != nil {
		s.Close()
		return nil, err
	}

	slog.Info("Model loaded.", "path", modelPath, "classes", len(metadata.Classes), "layout", metadata.Layout)
	return s, nil
}

func (s *Server) open(modelPath string) error {
	inputTensor, err := ort.NewEmptyTensor[float32](ort.NewShape(s.metadata.InputShape...))
	if err != nil {
		return fmt.Errorf("create input tensor: %w", err)
	}
	s.inputTensor = inputTensor

	outputTensor, err := ort.NewEmptyTensor[float32](ort.NewShape(s.metadata.OutputShape...))
	if err != nil {
		return fmt.Errorf("create output tensor: %w", err)
	}
	s.outputTensor = outputTensor

	session, err := ort.NewAdvancedSession(modelPath,
		[]string{s.metadata.InputName}, []string{s.metadata.OutputName},
		[]ort.ArbitraryTensor{inputTensor}, []ort.ArbitraryTensor{outputTensor},
		nil)
	if err != nil {
		return fmt.Errorf("create ONNX session: %w", err)
	}
	s.session = session
	return nil
}

func (s *Server) Metadata() Metadata {
	return s.metadata
}

func (s *Server) Predict(inputData []float32) (*Prediction, error) {
	if want := s.metadata.InputSize(); len(inputData) != want {
		return nil, fmt.Errorf("%w: expected %d values, got %d", ErrInputSize, want, len(inputData))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	copy(s.inputTensor.GetData(), inputData)

	if err := s.session.Run(); err != nil {
		return nil, fmt.Errorf("inference failed: %w", err)
	}

	// The tensor is overwritten by the next run.
	output := append([]float32(nil), s.outputTensor.GetData()...)
	return NewPrediction(output, s.metadata.Classes)
}

func (s *Server) Close() {
	if s.session != nil {
		s.session.Destroy()
	}
	if s.inputTensor != nil {
		s.inputTensor.Destroy()
	}
	if s.outputTensor != nil {
		s.outputTensor.Destroy()
	}
	ort.DestroyEnvironment()
}
