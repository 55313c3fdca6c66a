package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Video is one curated video, embeddable via
// https://www.youtube.com/watch?v={videoId}.
type Video struct {
	Title   string `json:"title"`
	VideoID string `json:"videoId"`
}

// Channel is one curated YouTube channel with a handful of picked videos.
type Channel struct {
	Name   string   `json:"name"`
	URL    string   `json:"url"`
	Topics []string `json:"topics"`
	Videos []Video  `json:"videos"`
}

// curatedChannels is static, in-process data; no API key or store involved.
var curatedChannels = []Channel{
	{
		Name:   "CodeWithHarry",
		URL:    "https://www.youtube.com/@CodeWithHarry",
		Topics: []string{"C++", "JavaScript", "Python", "DSA", "React"},
		Videos: []Video{
			{Title: "Python for Beginners (Hindi)", VideoID: "gfDE2a7MKjA"},
			{Title: "C++ Full Course", VideoID: "z9bZufPHFLU"},
			{Title: "React JS Tutorials", VideoID: "bMknfKXIFA8"},
		},
	},
	{
		Name:   "WsCube Tech",
		URL:    "https://www.youtube.com/@wscubetechindia",
		Topics: []string{"Web Dev", "Java", "Python", "DSA"},
		Videos: []Video{
			{Title: "Java Tutorial Series", VideoID: "xk4_1vDrzzo"},
			{Title: "HTML & CSS Crash Course", VideoID: "qz0aGYrrlhU"},
		},
	},
	{
		Name:   "Apna College",
		URL:    "https://www.youtube.com/@ApnaCollegeOfficial",
		Topics: []string{"C++", "DSA", "Placements"},
		Videos: []Video{
			{Title: "DSA One Shot", VideoID: "8hly31xKli0"},
			{Title: "C++ Placement Course", VideoID: "z9bZufPHFLU"},
		},
	},
}

type VideoHandler struct{}

func NewVideoHandler() *VideoHandler {
	return &VideoHandler{}
}

// ListVideos returns the curated catalog. Pure function of process state.
func (h *VideoHandler) ListVideos(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"channels": curatedChannels})
}
