package framework

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// CategorySpec defines one keyword-matched grouping of results. A result
// belongs to the category if its name contains any of the keywords,
// case-insensitively. Membership is not exclusive: one result may fall into
// zero, one, or several categories.
type CategorySpec struct {
	Name     string
	Keywords []string
}

// DefaultCategories is the grouping the report has always used. The substring
// matching is deliberately loose; see Category.Healthy for how the
// deliberate-rejection checks are kept out of the verdict.
var DefaultCategories = []CategorySpec{
	{Name: "Authentication", Keywords: []string{"auth", "login", "registration"}},
	{Name: "Products", Keywords: []string{"product"}},
	{Name: "Cart", Keywords: []string{"cart"}},
}

// Checks whose name contains this string expect the API to reject the
// request, so their outcome must not affect a category's health verdict.
const deliberateRejectionKeyword = "unauthenticated"

type Category struct {
	Name    string
	Members []CheckResult
	Healthy bool
}

type Summary struct {
	Total      int
	Passed     int
	Failed     int
	Categories []Category
	Failures   []CheckResult
}

// Summarize consumes the full ordered result sequence once, at the end of a
// run, and produces the aggregate report data.
func Summarize(results []CheckResult, specs []CategorySpec) Summary {
	s := Summary{Total: len(results)}
	for _, r := range results {
		if r.Success {
			s.Passed++
		} else {
			s.Failed++
			s.Failures = append(s.Failures, r)
		}
	}
	for _, spec := range specs {
		cat := Category{Name: spec.Name, Healthy: true}
		for _, r := range results {
			if !matchesAny(r.Name, spec.Keywords) {
				continue
			}
			cat.Members = append(cat.Members, r)
			if strings.Contains(strings.ToLower(r.Name), deliberateRejectionKeyword) {
				continue
			}
			cat.Healthy = cat.Healthy && r.Success
		}
		s.Categories = append(s.Categories, cat)
	}
	return s
}

func matchesAny(name string, keywords []string) bool {
	lower := strings.ToLower(name)
	for _, k := range keywords {
		if strings.Contains(lower, k) {
			return true
		}
	}
	return false
}

// PassRate returns passed/total as a percentage. The second value is false
// when no results were recorded, in which case the rate is undefined.
func (s Summary) PassRate() (float64, bool) {
	if s.Total == 0 {
		return 0, false
	}
	return float64(s.Passed) / float64(s.Total) * 100, true
}

func (s Summary) passRateString() string {
	rate, ok := s.PassRate()
	if !ok {
		return "N/A"
	}
	return fmt.Sprintf("%.1f%%", rate)
}

// PrintSummary writes the human-readable end-of-run report.
func PrintSummary(dest io.Writer, s Summary) {
	divider := strings.Repeat("=", 60)
	fmt.Fprintln(dest, divider)
	fmt.Fprintln(dest, "TEST SUMMARY")
	fmt.Fprintln(dest, divider)
	fmt.Fprintf(dest, "Passed: %s\n", color.GreenString("%d", s.Passed))
	if s.Failed > 0 {
		fmt.Fprintf(dest, "Failed: %s\n", color.RedString("%d", s.Failed))
	} else {
		fmt.Fprintf(dest, "Failed: %d\n", s.Failed)
	}
	fmt.Fprintf(dest, "Pass rate: %s\n", s.passRateString())

	if len(s.Failures) > 0 {
		fmt.Fprintln(dest)
		fmt.Fprintln(dest, "FAILED CHECKS:")
		for _, r := range s.Failures {
			fmt.Fprintf(dest, "  %s %s: %s\n", color.RedString("FAIL"), r.Name, r.Message)
		}
	}

	fmt.Fprintln(dest)
	fmt.Fprintln(dest, "CATEGORY HEALTH:")
	for _, cat := range s.Categories {
		verdict := color.GreenString("working")
		if !cat.Healthy {
			verdict = color.RedString("issues found")
		}
		fmt.Fprintf(dest, "  %s: %s (%d checks)\n", cat.Name, verdict, len(cat.Members))
	}
}
