// Package list provides the "kopen list" command, which prints every KiCad
// project found below a directory without choosing one.
package list
