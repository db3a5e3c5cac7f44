package content

import (
	"fmt"
	"strings"
)

// Resolution is the best video resolution a content item is offered in.
type Resolution string

const (
	ResolutionUnknown Resolution = ""
	ResolutionSD      Resolution = "480p"
	ResolutionHD      Resolution = "720p"
	ResolutionFullHD  Resolution = "1080p"
	ResolutionUHD     Resolution = "4K"
)

func (r Resolution) String() string { return string(r) }

func (r Resolution) valid() bool {
	switch r {
	case ResolutionUnknown, ResolutionSD, ResolutionHD, ResolutionFullHD, ResolutionUHD:
		return true
	}
	return false
}

// ParseResolution accepts the usual spellings: "sd", "480p", "hd", "720p",
// "fullhd", "1080p", "uhd", "4k", "2160p".
func ParseResolution(s string) (Resolution, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return ResolutionUnknown, nil
	case "sd", "480p":
		return ResolutionSD, nil
	case "hd", "720p":
		return ResolutionHD, nil
	case "fullhd", "fhd", "1080p":
		return ResolutionFullHD, nil
	case "uhd", "4k", "2160p":
		return ResolutionUHD, nil
	}
	return ResolutionUnknown, fmt.Errorf("unknown resolution %q: %w", s, ErrInvalidArgument)
}
