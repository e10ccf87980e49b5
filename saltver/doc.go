// Package saltver writes the Salt release version into the source tree.
//
// The version is either supplied explicitly or discovered by running the
// in-tree 'salt/version.py' script. On success it is written, verbatim, to
// 'salt/_version.txt' below the repository root. When running under CI the
// version is additionally exported as key=value lines appended to the files
// named by the GITHUB_ENV and GITHUB_OUTPUT environment variables.
package saltver
