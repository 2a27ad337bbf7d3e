package console

import (
	"context"
	"fmt"

	"edusite/utils"
)

// Form holds the draft of one record being created or edited in an
// overlay. It is a single-session object driven from one goroutine,
// like the dashboard UI it models.
type Form struct {
	gw   Gateway
	path string

	draft  Record
	isEdit bool

	// Err is the inline error banner. A failed submit sets it and
	// leaves the draft intact; the next successful action clears it.
	Err string

	// OnSave runs after a successful submit, before OnClose. Wired to
	// the owning controller's LoadAll in practice.
	OnSave  func()
	OnClose func()
}

// NewForm starts a draft. record == nil means create: the draft is
// seeded from template. A non-nil record means edit: the draft starts
// as a copy of it, and the slug (if any) is from then on an ordinary,
// independently editable field.
func NewForm(gw Gateway, path string, record, template Record) *Form {
	f := &Form{gw: gw, path: path}
	if record != nil {
		f.draft = record.clone()
		f.isEdit = true
	} else {
		f.draft = template.clone()
	}
	return f
}

// Draft exposes the current draft for rendering.
func (f *Form) Draft() Record {
	return f.draft
}

// SetField replaces one key of the draft. While creating, a title edit
// also rederives the slug; editing an existing record never does.
func (f *Form) SetField(key string, value interface{}) {
	f.draft[key] = value
	if key == "title" && !f.isEdit {
		if title, ok := value.(string); ok {
			f.draft["slug"] = utils.Slugify(title)
		}
	}
}

// AddItem appends a value to a list-valued field. Plain string items
// are duplicate-suppressed; structured items (e.g. curriculum modules)
// are appended as-is and may repeat.
func (f *Form) AddItem(field string, value interface{}) {
	list, _ := f.draft[field].([]interface{})

	if s, isString := value.(string); isString {
		for _, existing := range list {
			if existing == s {
				return
			}
		}
	}
	f.draft[field] = append(list, value)
}

// RemoveItem drops the first occurrence of value from a list field.
func (f *Form) RemoveItem(field string, value interface{}) {
	list, _ := f.draft[field].([]interface{})
	for i, existing := range list {
		if existing == value {
			f.draft[field] = append(list[:i:i], list[i+1:]...)
			return
		}
	}
}

// RemoveItemAt drops the element at index from a list field, used for
// structured items that have no usable equality.
func (f *Form) RemoveItemAt(field string, index int) {
	list, _ := f.draft[field].([]interface{})
	if index < 0 || index >= len(list) {
		return
	}
	f.draft[field] = append(list[:index:index], list[index+1:]...)
}

// Submit validates required fields, then PUTs (edit) or POSTs
// (create). On success OnSave then OnClose run and the form is done;
// on failure the draft stays as typed and Err carries the banner text.
func (f *Form) Submit(ctx context.Context, required ...string) error {
	for _, field := range required {
		v, ok := f.draft[field]
		if !ok || v == "" || v == nil {
			f.Err = fmt.Sprintf("%s is required", field)
			return fmt.Errorf("console: %s", f.Err)
		}
	}

	var err error
	if f.isEdit {
		_, err = f.gw.Update(ctx, f.path, f.draft.ID(), f.draft)
	} else {
		_, err = f.gw.Insert(ctx, f.path, f.draft)
	}
	if err != nil {
		f.Err = "Failed to save. Please try again."
		return err
	}

	f.Err = ""
	if f.OnSave != nil {
		f.OnSave()
	}
	if f.OnClose != nil {
		f.OnClose()
	}
	return nil
}
