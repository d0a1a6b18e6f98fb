// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type (
	// Id identifies a known issue in the catalog.
	Id int

	// MarkdownMsg is the Markdown body of an issue card.
	MarkdownMsg string

	// HttpLink is a documentation or external reference URL.
	HttpLink string

	// Issue is a user-facing guidance card for a well-known failure.
	Issue struct {
		id       Id
		mdMsg    MarkdownMsg
		docLinks []HttpLink
	}
)

const (
	ConfigNotFoundId Id = iota + 1
	ConfigParseErrorId
	NoReposFoundId
	ShellNotFoundId
)

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

// Render returns the issue card rendered for the terminal.
func (i *Issue) Render(stylePath string) (string, error) {
	return render(string(i.mdMsg), stylePath)
}

var (
	render = glamour.Render

	configNotFoundIssue = &Issue{
		id: ConfigNotFoundId,
		mdMsg: `
# No configuration file found!

vcsup needs a config file describing your tools and root paths.

## Things you can try:
- Generate a starter config:
~~~
$ vcsup --gen-conf
~~~
- Point vcsup at an existing file:
~~~
$ vcsup --config /path/to/config.toml
~~~`,
	}

	configParseErrorIssue = &Issue{
		id: ConfigParseErrorId,
		mdMsg: `
# Failed to parse the configuration!

Your config file contains syntax errors or invalid values.

## Common issues:
- Invalid TOML syntax (missing quotes, brackets, etc.)
- A singular key (` + "`<tool>-dir`" + `, ` + "`<tool>-name`" + `) carrying a list
- A tool listed in ` + "`tools`" + ` without its ` + "`<tool>-dir`" + `/` + "`<tool>-name`" + `/` + "`<tool>-commands`" + ` keys

## Things you can try:
- Check the error message above for the offending key
- Compare against a fresh sample:
~~~
$ vcsup --gen-conf
~~~`,
	}

	noReposFoundIssue = &Issue{
		id: NoReposFoundId,
		mdMsg: `
# No repositories found!

None of the configured root paths expanded to a repository.

## Things you can try:
- Check that the ` + "`paths`" + ` entries exist (relative entries resolve against your home directory)
- Check each tool's marker directory name (e.g. ` + "`.git`" + ` for git)
- List what vcsup resolves:
~~~
$ vcsup --get-paths
~~~`,
	}

	shellNotFoundIssue = &Issue{
		id: ShellNotFoundId,
		mdMsg: `
# No shell found!

vcsup runs update commands through your system shell, but none was found.

## Things you can try:
- Set the SHELL environment variable
- Install a POSIX shell (sh, bash, ...)`,
	}

	issues = map[Id]*Issue{
		configNotFoundIssue.Id():   configNotFoundIssue,
		configParseErrorIssue.Id(): configParseErrorIssue,
		noReposFoundIssue.Id():     noReposFoundIssue,
		shellNotFoundIssue.Id():    shellNotFoundIssue,
	}
)

// Values returns all cataloged issues.
func Values() []*Issue {
	return maps.Values(issues)
}

// Get returns the issue for id, or nil if unknown.
func Get(id Id) *Issue {
	return issues[id]
}
