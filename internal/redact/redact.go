// Package redact выполняет приватизацию изображений перед durable-записью:
// найденные лица необратимо размываются, результат перекодируется в JPEG.
//
// Редакция best-effort: пропуски детектора принимаются как известное
// ограничение MVP, это не security boundary. Номерные знаки и прочие
// идентифицирующие детали не размываются.
package redact

import (
	"bytes"
	"fmt"

	"github.com/disintegration/imaging"

	"github.com/safarnexus/hazard_reporting_system/internal/models"
)

const (
	// Сигма гауссова размытия: достаточно сильная, чтобы лицо
	// нельзя было восстановить из результата
	blurSigma = 30.0

	// Фиксированное качество перекодирования JPEG
	jpegQuality = 90
)

// Redactor - чистое преобразование байты -> байты, без I/O и внешнего состояния
type Redactor struct {
	detector FaceDetector
}

func NewRedactor(detector FaceDetector) *Redactor {
	return &Redactor{detector: detector}
}

// Redact декодирует изображение, размывает каждую найденную область лица
// и перекодирует результат в JPEG. Недекодируемый вход дает models.ErrDecodeImage.
// Результат детерминирован для одного и того же детектора и входа.
func (r *Redactor) Redact(data []byte) ([]byte, error) {
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrDecodeImage, err)
	}

	dst := imaging.Clone(img)
	for _, box := range r.detector.Detect(dst) {
		box = box.Intersect(dst.Bounds())
		if box.Empty() {
			continue
		}
		region := imaging.Crop(dst, box)
		blurred := imaging.Blur(region, blurSigma)
		dst = imaging.Paste(dst, blurred, box.Min)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, dst, imaging.JPEG, imaging.JPEGQuality(jpegQuality)); err != nil {
		return nil, fmt.Errorf("failed to encode redacted image: %w", err)
	}
	return buf.Bytes(), nil
}
