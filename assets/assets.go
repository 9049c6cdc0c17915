package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

//go:embed courses/*.tmx
var assetFS embed.FS

// Cloud drifts across the sky band.
type Cloud struct {
	X, Y, Width, Height float64
	Speed               float64 // pixels per second, 0 uses the scenery default
}

// Hill is an ellipse anchored at its bounding box.
type Hill struct {
	X, Y, Width, Height float64
	Shade               bool
}

// FinishBanner is the checkered post at the finish line.
type FinishBanner struct {
	X, Y, Width, Height float64
	Checks              int
}

// Course is the scenery and layout hints for a race backdrop.
type Course struct {
	Name          string
	Width, Height int
	Clouds        []Cloud
	Hills         []Hill
	Finish        FinishBanner
	PerchX        float64
	PerchY        float64
	HasPerch      bool
}

type CourseLoader struct {
	fsys fs.FS
}

func NewCourseLoader() *CourseLoader {
	return &CourseLoader{fsys: assetFS}
}

// NewCourseLoaderFS reads courses from another filesystem, for overrides and tests.
func NewCourseLoaderFS(fsys fs.FS) *CourseLoader {
	return &CourseLoader{fsys: fsys}
}

// CourseNames lists the TMX files under courses/, sorted.
func (l *CourseLoader) CourseNames() ([]string, error) {
	entries, err := fs.ReadDir(l.fsys, "courses")
	if err != nil {
		return nil, fmt.Errorf("read courses directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && filepath.Ext(entry.Name()) == ".tmx" {
			names = append(names, "courses/"+entry.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// LoadCourse parses a TMX map whose object groups describe the scenery.
func (l *CourseLoader) LoadCourse(path string) (Course, error) {
	courseMap, err := tiled.LoadFile(path, tiled.WithFileSystem(l.fsys))
	if err != nil {
		return Course{}, fmt.Errorf("load course %s: %w", path, err)
	}

	course := Course{
		Name:   strings.TrimSuffix(filepath.Base(path), ".tmx"),
		Width:  courseMap.Width * courseMap.TileWidth,
		Height: courseMap.Height * courseMap.TileHeight,
	}

	for _, og := range courseMap.ObjectGroups {
		switch og.Name {
		case "Clouds":
			for _, o := range og.Objects {
				course.Clouds = append(course.Clouds, Cloud{
					X:      o.X,
					Y:      o.Y,
					Width:  o.Width,
					Height: o.Height,
					Speed:  o.Properties.GetFloat("speed"),
				})
			}
		case "Hills":
			for _, o := range og.Objects {
				course.Hills = append(course.Hills, Hill{
					X:      o.X,
					Y:      o.Y,
					Width:  o.Width,
					Height: o.Height,
					Shade:  o.Properties.GetBool("shade"),
				})
			}
		case "Finish":
			for _, o := range og.Objects {
				course.Finish = FinishBanner{
					X:      o.X,
					Y:      o.Y,
					Width:  o.Width,
					Height: o.Height,
					Checks: o.Properties.GetInt("checks"),
				}
			}
		case "Perch":
			for _, o := range og.Objects {
				course.PerchX, course.PerchY = o.X, o.Y
				course.HasPerch = true
			}
		}
	}

	// Back to front
	sort.SliceStable(course.Hills, func(i, j int) bool {
		return course.Hills[i].Y < course.Hills[j].Y
	})

	return course, nil
}

// MustLoadCourse is LoadCourse for the embedded courses, panicking on error.
func (l *CourseLoader) MustLoadCourse(path string) Course {
	course, err := l.LoadCourse(path)
	if err != nil {
		panic(err)
	}
	return course
}
