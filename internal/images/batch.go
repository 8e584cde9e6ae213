package images

import (
	"log/slog"
	"path/filepath"

	"github.com/disintegration/imaging"

	"git.home.luguber.info/inful/vados/internal/config"
	ferrors "git.home.luguber.info/inful/vados/internal/foundation/errors"
	"git.home.luguber.info/inful/vados/internal/logfields"
)

// Stats summarizes one directory of image references.
type Stats struct {
	Result
	Processed int
	Failed    int
}

// Add accumulates o into s.
func (s *Stats) Add(o Stats) {
	s.Result.Add(o.Result)
	s.Processed += o.Processed
	s.Failed += o.Failed
}

// ProcessFile decodes root/rel/ref.FileName and processes it.
func (t *Transcoder) ProcessFile(root, rel string, ref config.ImageReference) (string, *ProcessedImage, Result, error) {
	if _, err := FileBase(ref.FileName); err != nil {
		return "", nil, Result{}, err
	}
	file := filepath.Join(root, filepath.FromSlash(rel), ref.FileName)
	src, err := imaging.Open(file, imaging.AutoOrientation(true))
	if err != nil {
		return "", nil, Result{}, ferrors.WrapError(err, ferrors.CategoryImage, "decode image").
			Warning().
			WithContext("file", file).
			Build()
	}
	return t.Process(src, dirKey(rel), ref)
}

// ProcessList processes every reference of the image directory rel (slash
// separated, relative to root) and stores the results in cat. A reference
// that fails is logged and skipped.
func (t *Transcoder) ProcessList(root, rel string, refs []config.ImageReference, cat *Catalog) Stats {
	var stats Stats
	for _, ref := range refs {
		key, img, res, err := t.ProcessFile(root, rel, ref)
		stats.Result.Add(res)
		if err != nil {
			stats.Failed++
			slog.Warn("Skipping image",
				logfields.Directory(rel),
				logfields.File(ref.FileName),
				logfields.Error(err))
			continue
		}
		cat.Put(key, img)
		stats.Processed++
	}
	return stats
}
