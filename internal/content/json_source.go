package content

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path"

	"github.com/osse101/FishingOverhaul_Go/internal/domain"
	"github.com/osse101/FishingOverhaul_Go/internal/logger"
	"github.com/osse101/FishingOverhaul_Go/internal/metrics"
	"github.com/osse101/FishingOverhaul_Go/internal/validation"
)

// JSONSource loads every *.json file under a file system as content packs.
// Files are read in lexical order; each file is one FishingContent document.
type JSONSource struct {
	name      string
	fsys      fs.FS
	validator validation.SchemaValidator
}

// NewJSONSource creates a source over fsys
func NewJSONSource(name string, fsys fs.FS) *JSONSource {
	return &JSONSource{
		name:      name,
		fsys:      fsys,
		validator: validation.NewSchemaValidator(),
	}
}

// NewDirSource creates a source over a directory on disk
func NewDirSource(dir string) *JSONSource {
	return NewJSONSource(dir, os.DirFS(dir))
}

func (s *JSONSource) Name() string { return s.name }

// Reload reads all content files. A file that fails schema validation is skipped
// whole; a record that fails validation is skipped alone. Only I/O failures are errors.
func (s *JSONSource) Reload(ctx context.Context) (domain.FishingContent, error) {
	var files []string
	err := fs.WalkDir(s.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && path.Ext(p) == ".json" {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return domain.FishingContent{}, fmt.Errorf("%w: "+ErrMsgWalkFailed, domain.ErrSourceFailed, err)
	}

	var out domain.FishingContent
	for _, file := range files {
		data, err := fs.ReadFile(s.fsys, file)
		if err != nil {
			return domain.FishingContent{}, fmt.Errorf(ErrMsgReadFileFailed, file, err)
		}
		c, err := DecodeContent(ctx, s.name, file, data, s.validator)
		if err != nil {
			logger.FromContext(ctx).Warn(LogMsgFileSkipped, LogFieldSource, s.name, LogFieldFile, file, LogFieldError, err)
			continue
		}
		out = out.Merge(c)
	}

	logger.FromContext(ctx).Debug(LogMsgSourceLoaded, LogFieldSource, s.name, LogFieldCount, len(files))
	return out, nil
}

type rawContent struct {
	AddFish       []json.RawMessage          `json:"addFish"`
	SetFishTraits map[string]json.RawMessage `json:"setFishTraits"`
	AddTrash      []json.RawMessage          `json:"addTrash"`
	AddTreasure   []json.RawMessage          `json:"addTreasure"`
	AddEffects    []json.RawMessage          `json:"addEffects"`
	SetLocations  map[string]json.RawMessage `json:"setLocations"`
}

// DecodeContent parses one content document. The document shape is checked
// against the content schema; each record is then checked and decoded on its own
// so one bad record does not cost the rest of the file.
func DecodeContent(ctx context.Context, source, file string, data []byte, v validation.SchemaValidator) (domain.FishingContent, error) {
	if err := v.ValidateBytes(data, validation.SchemaContent); err != nil {
		return domain.FishingContent{}, err
	}

	var raw rawContent
	if err := json.Unmarshal(data, &raw); err != nil {
		return domain.FishingContent{}, fmt.Errorf(ErrMsgParseFileFailed, file, err)
	}

	d := recordDecoder{ctx: ctx, source: source, file: file, validator: v}
	out := domain.FishingContent{
		AddFish:     decodeAll[domain.FishEntry](d, KindFish, validation.DefFish, raw.AddFish),
		AddTrash:    decodeAll[domain.TrashEntry](d, KindTrash, validation.DefTrash, raw.AddTrash),
		AddTreasure: decodeAll[domain.TreasureEntry](d, KindTreasure, validation.DefTreasure, raw.AddTreasure),
		AddEffects:  decodeAll[domain.FishingEffectEntry](d, KindEffect, validation.DefEffect, raw.AddEffects),
	}
	for i := range out.AddTreasure {
		out.AddTreasure[i] = out.AddTreasure[i].WithQuantityDefaults()
	}

	if len(raw.SetFishTraits) > 0 {
		out.SetFishTraits = make(map[domain.NamespacedKey]domain.FishTraits, len(raw.SetFishTraits))
		i := 0
		for rawKey, rec := range raw.SetFishTraits {
			i++
			key, err := domain.ParseKey(rawKey)
			if err != nil {
				d.skip(KindTraits, i, err)
				continue
			}
			traits, ok := decodeOne[domain.FishTraits](d, KindTraits, validation.DefTraits, i, rec)
			if ok {
				out.SetFishTraits[key] = traits
			}
		}
	}

	if len(raw.SetLocations) > 0 {
		out.SetLocations = make(map[string]domain.LocationInfo, len(raw.SetLocations))
		i := 0
		for name, rec := range raw.SetLocations {
			i++
			if loc, ok := decodeOne[domain.LocationInfo](d, KindLocation, validation.DefLocation, i, rec); ok {
				out.SetLocations[name] = loc
			}
		}
	}
	return out, nil
}

type recordDecoder struct {
	ctx       context.Context
	source    string
	file      string
	validator validation.SchemaValidator
}

func (d recordDecoder) skip(kind string, index int, err error) {
	logger.FromContext(d.ctx).Warn(LogMsgRecordSkipped,
		LogFieldSource, d.source,
		LogFieldFile, d.file,
		LogFieldKind, kind,
		LogFieldIndex, index,
		LogFieldError, err)
	metrics.RegistrySkippedRecords.WithLabelValues(d.source, kind).Inc()
}

func decodeAll[T any](d recordDecoder, kind, def string, raw []json.RawMessage) []T {
	if len(raw) == 0 {
		return nil
	}
	out := make([]T, 0, len(raw))
	for i, rec := range raw {
		if v, ok := decodeOne[T](d, kind, def, i, rec); ok {
			out = append(out, v)
		}
	}
	return out
}

func decodeOne[T any](d recordDecoder, kind, def string, index int, rec json.RawMessage) (T, bool) {
	var v T
	if err := d.validator.ValidateBytes(rec, def); err != nil {
		d.skip(kind, index, err)
		return v, false
	}
	if err := json.Unmarshal(rec, &v); err != nil {
		d.skip(kind, index, fmt.Errorf(ErrMsgDecodeFailed, domain.ErrMalformedRecord, kind, index, err))
		return v, false
	}
	return v, true
}
