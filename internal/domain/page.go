package domain

import "strconv"

const DefaultPageSize = 10

// Page is a page-oriented window: From is the zero-based page index, not a row offset.
type Page struct {
	From int
	Size int
}

func (p Page) Offset() int { return p.From * p.Size }

func (p Page) Validate() error {
	if p.From < 0 {
		return Errorf(ErrValidation, "from must be >= 0, got %d", p.From)
	}
	if p.Size < 1 {
		return Errorf(ErrValidation, "size must be >= 1, got %d", p.Size)
	}
	return nil
}

// ParsePage reads raw from/size query values. Empty values fall back to
// page 0 and DefaultPageSize.
func ParsePage(rawFrom, rawSize string) (Page, error) {
	p := Page{From: 0, Size: DefaultPageSize}
	if rawFrom != "" {
		v, err := strconv.Atoi(rawFrom)
		if err != nil {
			return Page{}, Errorf(ErrValidation, "from must be an integer, got %q", rawFrom)
		}
		p.From = v
	}
	if rawSize != "" {
		v, err := strconv.Atoi(rawSize)
		if err != nil {
			return Page{}, Errorf(ErrValidation, "size must be an integer, got %q", rawSize)
		}
		p.Size = v
	}
	return p, p.Validate()
}
