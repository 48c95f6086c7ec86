package redact

import (
	"fmt"
	"image"

	pigo "github.com/esimov/pigo/core"
)

// FaceDetector выдает прямоугольники лиц на изображении.
// Интерфейс позволяет подменять детектор в тестах.
type FaceDetector interface {
	Detect(img image.Image) []image.Rectangle
}

// Минимальный quality score детекции; ниже - отбрасываем как шум
const minDetectionQuality = 5.0

// PigoDetector - фронтальный детектор лиц на базе каскада pigo.
// Каскад загружается один раз при старте процесса.
type PigoDetector struct {
	classifier *pigo.Pigo
}

// NewPigoDetector распаковывает бинарный каскад и возвращает детектор
func NewPigoDetector(cascade []byte) (*PigoDetector, error) {
	classifier, err := pigo.NewPigo().Unpack(cascade)
	if err != nil {
		return nil, fmt.Errorf("failed to unpack face cascade: %w", err)
	}
	return &PigoDetector{classifier: classifier}, nil
}

// Detect возвращает bounding box каждого найденного лица.
// Детектор детерминирован: один и тот же вход дает один и тот же результат.
func (d *PigoDetector) Detect(img image.Image) []image.Rectangle {
	bounds := img.Bounds()
	rows, cols := bounds.Dy(), bounds.Dx()

	params := pigo.CascadeParams{
		MinSize:     20,
		MaxSize:     max(rows, cols),
		ShiftFactor: 0.1,
		ScaleFactor: 1.1,
		ImageParams: pigo.ImageParams{
			Pixels: pigo.RgbToGrayscale(img),
			Rows:   rows,
			Cols:   cols,
			Dim:    cols,
		},
	}

	dets := d.classifier.RunCascade(params, 0.0)
	dets = d.classifier.ClusterDetections(dets, 0.2)

	boxes := make([]image.Rectangle, 0, len(dets))
	for _, det := range dets {
		if det.Q < minDetectionQuality {
			continue
		}
		half := det.Scale / 2
		boxes = append(boxes, image.Rect(det.Col-half, det.Row-half, det.Col+half, det.Row+half))
	}
	return boxes
}
