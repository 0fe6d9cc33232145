// Package draft holds the in-progress new-recipe form state and the photo
// selection pipeline. The form survives a failed submit so the user can
// correct fields and resubmit; a successful submit resets it to the default
// draft.
package draft

import (
	"context"
	"encoding/base64"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/ssolovjova/recipebox/internal/client/models"
	"github.com/ssolovjova/recipebox/internal/client/recipes"
	"github.com/ssolovjova/recipebox/internal/logging"
)

// Field names accepted by SetField.
const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldIngredients = "ingredients"
	FieldPrepTime    = "prepTime"
	FieldCookTime    = "cookTime"
	FieldServings    = "servings"
	FieldDifficulty  = "difficulty"
	FieldCuisine     = "cuisine"
	FieldStatus      = "status"
)

// readFile is a test seam for the asynchronous photo read.
var readFile = os.ReadFile

// Form is the draft-recipe form controller.
//
// Photo selection is asynchronous: SelectPhoto kicks off a background read of
// the file into a displayable data-URL preview. Each selection bumps a
// monotonically increasing token; a read finishing for a superseded token is
// discarded, so a slow read can never overwrite a later selection.
type Form struct {
	mu      sync.Mutex
	draft   models.DraftRecipe
	preview string
	token   uint64
	reads   sync.WaitGroup
	log     logging.Logger
}

func NewForm(log logging.Logger) *Form {
	return &Form{draft: models.DefaultDraft(), log: log}
}

// Draft returns a copy of the current draft.
func (f *Form) Draft() models.DraftRecipe {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.draft
}

// Preview returns the current photo preview as a data URL, or "" when no
// preview is available.
func (f *Form) Preview() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.preview
}

// SetField updates a single draft field from its textual input. Numeric
// fields must parse as integers and choice fields must name a valid option;
// otherwise the field keeps its last valid value and an error describes the
// rejection.
func (f *Form) SetField(name, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch name {
	case FieldTitle:
		f.draft.Title = value
	case FieldDescription:
		f.draft.Description = value
	case FieldIngredients:
		f.draft.Ingredients = value

	case FieldPrepTime, FieldCookTime, FieldServings:
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil || n < 0 {
			return fmt.Errorf("%s: %q is not a valid number", name, value)
		}
		switch name {
		case FieldPrepTime:
			f.draft.PrepTime = n
		case FieldCookTime:
			f.draft.CookTime = n
		case FieldServings:
			f.draft.Servings = n
		}

	case FieldDifficulty:
		d := models.Difficulty(value)
		if !d.Valid() {
			return fmt.Errorf("difficulty: %q is not one of %v", value, models.Difficulties)
		}
		f.draft.Difficulty = d
	case FieldCuisine:
		c := models.Cuisine(value)
		if !c.Valid() {
			return fmt.Errorf("cuisine: %q is not one of %v", value, models.Cuisines)
		}
		f.draft.Cuisine = c
	case FieldStatus:
		s := models.Status(value)
		if !s.Valid() {
			return fmt.Errorf("status: %q is not one of %v", value, models.Statuses)
		}
		f.draft.Status = s

	default:
		return fmt.Errorf("unknown field %q", name)
	}
	return nil
}

// SelectPhoto attaches the file at path to the draft and reads it into a
// preview in the background without blocking the caller. An empty path
// clears both the stored file and the preview. Re-selection supersedes any
// in-flight read (last write wins).
func (f *Form) SelectPhoto(ctx context.Context, path string) {
	f.mu.Lock()
	f.token++
	token := f.token
	f.draft.PhotoPath = path
	if path == "" {
		f.preview = ""
		f.mu.Unlock()
		return
	}
	f.mu.Unlock()

	f.reads.Add(1)
	go func() {
		defer f.reads.Done()

		data, err := readFile(path)

		f.mu.Lock()
		defer f.mu.Unlock()
		if token != f.token {
			// A later selection (or reset) superseded this read.
			return
		}
		if err != nil {
			f.log.Warn(ctx, "reading photo failed", "path", path, "error", err)
			f.draft.PhotoPath = ""
			f.preview = ""
			return
		}
		f.preview = dataURL(path, data)
	}()
}

// Wait blocks until any in-flight photo read has finished.
func (f *Form) Wait() {
	f.reads.Wait()
}

func dataURL(path string, data []byte) string {
	mimeType := mime.TypeByExtension(filepath.Ext(path))
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// Submit dispatches the draft through the repository. On success the form
// resets to the default draft and the preview is cleared; on failure every
// field is left intact for correction and resubmission.
func (f *Form) Submit(ctx context.Context, repo recipes.Repository) (*models.Recipe, error) {
	created, err := repo.Create(ctx, f.Draft())
	if err != nil {
		return nil, err
	}
	f.Reset()
	return created, nil
}

// Reset returns the form to the default draft and invalidates any in-flight
// photo read.
func (f *Form) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.token++
	f.draft = models.DefaultDraft()
	f.preview = ""
}
