// Package converter aggregates the numbered data folders into a dataset and
// runs the full and sample conversion pipelines.
package converter

import "github.com/greendata20/disablility-monitoring/csvparser/entities"

// Folder maps one numbered data folder to the bucket its rows go to.
type Folder struct {
	Name   string
	Bucket string
}

// FullPlan lists every data folder in processing order. Folders 2 and 3
// both hold age and gender tables and share a bucket.
var FullPlan = []Folder{
	{Name: "1", Bucket: entities.ByAgeAndSeverity},
	{Name: "2", Bucket: entities.ByAgeAndGender},
	{Name: "3", Bucket: entities.ByAgeAndGender},
	{Name: "4", Bucket: entities.ByTypeAndGender},
	{Name: "5", Bucket: entities.ByTypeAndAge},
	{Name: "6", Bucket: entities.BySeverityAndGender},
}

// SamplePlan is FullPlan without folder 3.
var SamplePlan = []Folder{
	{Name: "1", Bucket: entities.ByAgeAndSeverity},
	{Name: "2", Bucket: entities.ByAgeAndGender},
	{Name: "4", Bucket: entities.ByTypeAndGender},
	{Name: "5", Bucket: entities.ByTypeAndAge},
	{Name: "6", Bucket: entities.BySeverityAndGender},
}
