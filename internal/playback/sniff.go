package playback

import (
	"errors"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/bogem/id3v2"
	"github.com/dhowden/tag"
)

// ErrInvalidMediaContent means the staged artifact looks like an error
// page rather than audio.
var ErrInvalidMediaContent = errors.New("staged content is not audio")

const sniffBytes = 64 * 1024

// sniffResult is what a look at the head of the staged artifact tells us.
type sniffResult struct {
	MIME  string // detected content type, empty when unsure
	Title string // bulletin title from an ID3 tag, if any
}

// sniffArtifact copies the head of the (possibly still-filling) artifact
// aside and inspects the copy, so the fetch process never has a reader
// holding its output file. Returns ErrInvalidMediaContent when the head
// is recognizably an HTML or text error page.
func sniffArtifact(path string) (sniffResult, error) {
	src, err := os.Open(path)
	if err != nil {
		return sniffResult{}, err
	}
	defer src.Close()

	copyPath := path + ".sniff"
	dst, err := os.Create(copyPath)
	if err != nil {
		return sniffResult{}, err
	}
	_, copyErr := io.CopyN(dst, src, sniffBytes)
	dst.Close()
	defer os.Remove(copyPath)
	if copyErr != nil && copyErr != io.EOF {
		return sniffResult{}, copyErr
	}

	head, err := os.ReadFile(copyPath)
	if err != nil {
		return sniffResult{}, err
	}
	if len(head) == 0 {
		// Nothing written yet; nothing to judge.
		return sniffResult{}, nil
	}

	probe := head
	if len(probe) > 512 {
		probe = probe[:512]
	}
	detected := http.DetectContentType(probe)
	if strings.HasPrefix(detected, "text/") || strings.Contains(detected, "xml") {
		return sniffResult{}, ErrInvalidMediaContent
	}

	res := sniffResult{}
	if strings.HasPrefix(detected, "audio/") || strings.HasPrefix(detected, "video/") {
		res.MIME = detected
	}

	// A parseable container confirms audio even when DetectContentType
	// only saw application/octet-stream.
	copyFile, err := os.Open(copyPath)
	if err == nil {
		if _, _, idErr := tag.Identify(copyFile); idErr == nil && res.MIME == "" {
			res.MIME = "audio/mpeg"
		}
		copyFile.Close()
	}

	// Bulletins often ship an ID3 title worth surfacing on the status bus.
	if id3, err := id3v2.Open(copyPath, id3v2.Options{Parse: true}); err == nil {
		res.Title = id3.Title()
		id3.Close()
	}

	return res, nil
}
