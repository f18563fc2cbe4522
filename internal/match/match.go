package match

import (
	"path/filepath"
	"strings"

	"subsync/internal/episode"
)

// Role distinguishes the two kinds of files that participate in matching.
type Role string

const (
	RoleVideo    Role = "video"
	RoleSubtitle Role = "subtitle"
)

// MediaFile is a directory entry annotated with its extracted episode number.
type MediaFile struct {
	Name       string
	Role       Role
	Episode    int
	HasEpisode bool
}

// NewMediaFile builds a MediaFile for name, running episode extraction once.
func NewMediaFile(name string, role Role) MediaFile {
	number, ok := episode.Extract(name)
	return MediaFile{Name: name, Role: role, Episode: number, HasEpisode: ok}
}

// Result binds one subtitle to at most one video and carries the derived
// output filename. Matched is false for fallback-named subtitles.
type Result struct {
	Subtitle   MediaFile
	Video      MediaFile
	Matched    bool
	OutputName string
}

// All pairs every subtitle with the video sharing its episode number and
// derives its output name. Matched subtitles take the video's filename with
// the extension swapped for the subtitle's; unmatched subtitles keep their
// own name behind fallbackPrefix.
func All(videos, subtitles []MediaFile, fallbackPrefix string) []Result {
	byEpisode := make(map[int]MediaFile, len(videos))
	for _, video := range videos {
		if !video.HasEpisode {
			continue
		}
		// First video in listing order wins on duplicate episode numbers.
		if _, seen := byEpisode[video.Episode]; !seen {
			byEpisode[video.Episode] = video
		}
	}

	results := make([]Result, 0, len(subtitles))
	for _, sub := range subtitles {
		res := Result{Subtitle: sub}
		if sub.HasEpisode {
			if video, ok := byEpisode[sub.Episode]; ok {
				res.Video = video
				res.Matched = true
			}
		}
		res.OutputName = outputName(res, fallbackPrefix)
		results = append(results, res)
	}
	return results
}

// DuplicateEpisodes reports video names grouped by episode number for every
// number claimed by more than one video. Used for ambiguity logging only.
func DuplicateEpisodes(videos []MediaFile) map[int][]string {
	names := make(map[int][]string)
	for _, video := range videos {
		if !video.HasEpisode {
			continue
		}
		names[video.Episode] = append(names[video.Episode], video.Name)
	}
	for number, group := range names {
		if len(group) < 2 {
			delete(names, number)
		}
	}
	return names
}

func outputName(res Result, fallbackPrefix string) string {
	if !res.Matched {
		return fallbackPrefix + res.Subtitle.Name
	}
	stem := strings.TrimSuffix(res.Video.Name, filepath.Ext(res.Video.Name))
	return stem + filepath.Ext(res.Subtitle.Name)
}
