package mapping

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"
)

// HelpText returns the configuration help, one paragraph per element.
// envLocalPath is the name of the environment-local override file.
func HelpText(envLocalPath string) []string {
	return []string{
		"The configuration file provides a way to customize the execution of the program. " +
			"The current version focuses on identifying the field names in your data to the program.",
		"In addition to the built-in defaults, there are two ways to specify configuration. " +
			fmt.Sprintf("You can create a file called %s in the directory you work in, ", envLocalPath) +
			"which suits input files with stable column headings, or you can pass a configuration file on the command line.",
		"There are two user sections: [REGISTRANTS] names the fields of the registration file and " +
			"[ATTENDEES] names the fields of the attendee file. A third [DEFAULT] section supplies values " +
			"for both when a section does not set them.",
		"Run 'gen-config new_config_file.cfg' to get a template with every default filled in, " +
			"then change the values on the right hand side of the = sign.",
		"Key names are case-insensitive, values are case-sensitive.",
		"Don't use quotes unless you need to keep trailing blanks in a field name. " +
			"Quotes are part of the value unless TRIM_QUOTES = yes and QUOTE_CHAR names the quote character, " +
			"in which case a value wrapped on both ends is unquoted and its blanks are kept.",
		"Values in a section only apply to that section's data file.",
	}
}

// WriteTemplate writes a commented configuration template holding the builtin
// defaults under the REGISTRANTS and ATTENDEES sections.
func WriteTemplate(w io.Writer, envLocalPath string) error {
	bw := bufio.NewWriter(w)

	for i, paragraph := range HelpText(envLocalPath) {
		if i > 0 {
			fmt.Fprintln(bw, "#")
		}
		for _, line := range Wrap(paragraph, 72) {
			fmt.Fprintf(bw, "# %s\n", line)
		}
	}

	defaults := Builtin().Sections[SectionDefault]
	keys := make([]string, 0, len(defaults))
	for k := range defaults {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, section := range []string{SectionRegistrants, SectionAttendees} {
		fmt.Fprintf(bw, "\n[%s]\n", section)
		for _, k := range keys {
			fmt.Fprintf(bw, "%s = %s\n", k, defaults[k])
		}
	}

	return bw.Flush()
}

// Wrap splits text into lines of at most width characters on word boundaries.
// Words longer than width are kept whole.
func Wrap(text string, width int) []string {
	var lines []string
	var b strings.Builder
	for _, word := range strings.Fields(text) {
		if b.Len() > 0 && b.Len()+1+len(word) > width {
			lines = append(lines, b.String())
			b.Reset()
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(word)
	}
	if b.Len() > 0 {
		lines = append(lines, b.String())
	}
	return lines
}
