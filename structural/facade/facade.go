// Package facade demonstrates the Facade pattern.
//
// VideoConverterFacade offers one ConvertVideo call over three subsystems that
// a caller would otherwise coordinate by hand.
package facade

import (
	"fmt"
	"io"
	"strings"
)

// AudioConverter extracts audio tracks.
type AudioConverter struct{}

func (AudioConverter) ExtractAudio(fileName string) string {
	return "Extracting audio from " + fileName
}

// VideoConverter changes container formats.
type VideoConverter struct{}

func (VideoConverter) ConvertFormat(fileName, format string) string {
	return fmt.Sprintf("Converting video from %s to %s", fileName, format)
}

// BitrateConverter lowers bitrates.
type BitrateConverter struct{}

func (BitrateConverter) ReduceBitrate(fileName string) string {
	return "Reducing bitrate of " + fileName
}

// VideoConverterFacade is the single entry point.
type VideoConverterFacade struct {
	audio   AudioConverter
	video   VideoConverter
	bitrate BitrateConverter
	out     io.Writer
}

// NewVideoConverterFacade returns a facade reporting each step to out.
func NewVideoConverterFacade(out io.Writer) *VideoConverterFacade {
	return &VideoConverterFacade{out: out}
}

// Steps returns the subsystem steps for converting fileName to format.
func (f *VideoConverterFacade) Steps(fileName, format string) []string {
	return []string{
		f.audio.ExtractAudio(fileName),
		f.video.ConvertFormat(fileName, format),
		f.bitrate.ReduceBitrate(fileName),
	}
}

// ConvertVideo runs every step and reports them.
func (f *VideoConverterFacade) ConvertVideo(fileName, format string) error {
	_, err := fmt.Fprintln(f.out, strings.Join(f.Steps(fileName, format), "\n"))
	return err
}

// Demo converts movie.mp4 to avi.
func Demo(w io.Writer) error {
	return NewVideoConverterFacade(w).ConvertVideo("movie.mp4", "avi")
}
