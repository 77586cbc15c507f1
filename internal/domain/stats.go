package domain

// Stats is an aggregate snapshot across the catalog.
// NumberOfUsers is nil when the caller's capability excludes it; when
// included it is present even if zero.
type Stats struct {
	NumberOfCourses  int
	NumberOfContents int
	LatestCourses    []Course
	NumberOfUsers    *int
}
