// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"cmp"
	"slices"

	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
)

type Id int

const (
	FileNotFoundId Id = iota + 1
	ConfigLoadFailedId
	MalformedMappingId
	InvalidDelimiterId
	EnvVarNotFoundId
	InvalidRootId
	RootCollisionId
	InvalidModuleNameId
	ModuleNotFoundId
	NotAPackageId
	NoModulesFoundId
	PermissionDeniedId
)

type MarkdownMsg string

type HttpLink string

type Renderer interface {
	Render(in string, stylePath string) (string, error)
}

type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	docLinks []HttpLink  // project documentation about this issue
	extLinks []HttpLink  // external links that might be useful for the user
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

func (i *Issue) ExtLinks() []HttpLink {
	return slices.Clone(i.extLinks)
}

func (i *Issue) Render(stylePath string) (string, error) {
	extraMd := ""
	if len(i.docLinks) > 0 || len(i.extLinks) > 0 {
		extraMd += "\n\n"
		extraMd += "## See also:\n"
		for _, link := range i.docLinks {
			extraMd += "\n- <" + string(link) + ">"
		}
		for _, link := range i.extLinks {
			extraMd += "\n- <" + string(link) + ">"
		}
	}
	return render(string(i.mdMsg)+extraMd, stylePath)
}

var (
	render = glamour.Render

	fileNotFoundIssue = &Issue{
		id: FileNotFoundId,
		mdMsg: `
# File not found!

A file or directory named on the command line does not exist.

## Things you can try:
- Check the path for typos
- Use an absolute path; relative paths resolve against the current directory
- Run 'porter config path' to see which config file porter looks for`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

The porter configuration file could not be read or does not match the schema.

## Things you can try:
- Check the CUE syntax of the file
- Run 'porter config path' to see which file is used
- Run 'porter config show' to print the effective configuration

## Example configuration:
~~~cue
log_level: "info"
hooks: [
	{env_var: "PORTER_MAP"},
	{map: "spam=/srv/spam", root: "vendor"},
]
~~~`,
	}

	malformedMappingIssue = &Issue{
		id: MalformedMappingId,
		mdMsg: `
# Malformed module mapping!

A mapping is a list of entries separated by the entry delimiter. Each entry
is one or more module names, the key/value delimiter, then a directory.

## Rules:
- Exactly one key/value delimiter per entry
- Names and directories must not be empty
- Names are plain, without dots
- A name may appear only once

## Example:
~~~
spam=/srv/spam:ham,eggs=/srv/shared
~~~

## Things you can try:
- Run 'porter scan <dir>...' to generate a valid mapping from directories
- Run 'porter check' to validate every configured hook`,
	}

	invalidDelimiterIssue = &Issue{
		id: InvalidDelimiterId,
		mdMsg: `
# Invalid delimiter!

Delimiters must be non-empty and must differ from each other.

## Things you can try:
- Pick a key/value delimiter that cannot appear in a path
- Keep the defaults: entries ':', names and directories '=', names ','
- Try the delimiters with 'porter resolve --map ... --entry-split ";" <name>'`,
	}

	envVarNotFoundIssue = &Issue{
		id: EnvVarNotFoundId,
		mdMsg: `
# Mapping variable not set!

A hook reads its mapping from an environment variable that is not defined.
A variable set to the empty string counts as defined.

## Things you can try:
- Export the variable before running porter:
~~~
$ export PORTER_MAP='spam=/srv/spam'
~~~

- Use an inline 'map' in the configuration instead
- Run 'porter check' to see which hook reads the variable`,
	}

	invalidRootIssue = &Issue{
		id: InvalidRootId,
		mdMsg: `
# Invalid root namespace!

A root namespace is a single plain name. It cannot contain dots.

## Things you can try:
- Use the first component only, e.g. 'vendor' instead of 'vendor.lib'
- Run 'porter check' to find the hook with the invalid root`,
	}

	rootCollisionIssue = &Issue{
		id: RootCollisionId,
		mdMsg: `
# Root namespace collides with a mapped name!

The root namespace is a virtual package and cannot also be mapped to a
directory in the same hook.

## Things you can try:
- Rename the root
- Move the colliding entry to another hook
- Run 'porter check' to list the names of each hook`,
	}

	invalidModuleNameIssue = &Issue{
		id: InvalidModuleNameId,
		mdMsg: `
# Invalid module name!

Module names are dot-separated lists of non-empty components, like 'pkg.spam'.

## Things you can try:
- Remove leading, trailing or doubled dots
- Run 'porter resolve pkg.spam' with the corrected name`,
	}

	moduleNotFoundIssue = &Issue{
		id: ModuleNotFoundId,
		mdMsg: `
# Module not found!

No hook handled the name and the default search found no package,
extension, source or compiled file for it.

## Things you can try:
- Run 'porter resolve <name>' to see what the hooks decide
- Run 'porter scan <dir>' to see what a directory provides
- Check the search path ('search_path' or PORTER_SEARCH_PATH)`,
	}

	notAPackageIssue = &Issue{
		id: NotAPackageId,
		mdMsg: `
# Parent is not a package!

A dotted name was requested below a module that is a plain file. Only
packages and virtual namespaces have children.

## Things you can try:
- Run 'porter import <parent>' to see which file the parent resolved to
- Turn the parent into a package directory with an '__init__.py'`,
	}

	noModulesFoundIssue = &Issue{
		id: NoModulesFoundId,
		mdMsg: `
# No modules found!

None of the scanned directories contains a package, extension, source or
compiled module.

## Things you can try:
- Pass the directories explicitly: 'porter scan /srv/lib /opt/lib'
- Run 'porter config show' to check the configured search_path`,
	}

	permissionDeniedIssue = &Issue{
		id: PermissionDeniedId,
		mdMsg: `
# Permission denied!

porter could not read a mapped directory or one of its files.

## Things you can try:
- Check file and directory permissions
- Run porter as a user that can read the module tree
- Run 'porter import -v <name>' to see the full error chain`,
	}

	issues = map[Id]*Issue{
		fileNotFoundIssue.Id():      fileNotFoundIssue,
		configLoadFailedIssue.Id():  configLoadFailedIssue,
		malformedMappingIssue.Id():  malformedMappingIssue,
		invalidDelimiterIssue.Id():  invalidDelimiterIssue,
		envVarNotFoundIssue.Id():    envVarNotFoundIssue,
		invalidRootIssue.Id():       invalidRootIssue,
		rootCollisionIssue.Id():     rootCollisionIssue,
		invalidModuleNameIssue.Id(): invalidModuleNameIssue,
		moduleNotFoundIssue.Id():    moduleNotFoundIssue,
		notAPackageIssue.Id():       notAPackageIssue,
		noModulesFoundIssue.Id():    noModulesFoundIssue,
		permissionDeniedIssue.Id():  permissionDeniedIssue,
	}
)

// Values returns every catalog entry ordered by Id.
func Values() []*Issue {
	out := maps.Values(issues)
	slices.SortFunc(out, func(a, b *Issue) int { return cmp.Compare(a.Id(), b.Id()) })
	return out
}

func Get(id Id) *Issue {
	return issues[id]
}
