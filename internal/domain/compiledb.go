package domain

import (
	"fmt"
	"sort"
)

// CompileRecord is one entry of a compilation database. An empty record marks a
// file that was excluded from the database.
type CompileRecord map[string]any

// File returns the source file the record describes.
func (r CompileRecord) File() (string, bool) {
	f, ok := r["file"].(string)
	return f, ok
}

// BuildInfo holds the facts queried from the build coordinator.
type BuildInfo struct {
	ExecutionRoot string `json:"execution_root"`
	BinDir        string `json:"bazel_bin"`
	Workspace     string `json:"workspace"`
}

// CompileCommandsFile is the database file name consumed by clang tooling.
const CompileCommandsFile = "compile_commands.json"

// CompileRecordGlob locates the per-file records relative to the binary output directory.
const CompileRecordGlob = "../extra_actions/tools/code_style/gen_cpp_db/**/*_cpp_compile_command"

// BuildCompileDatabase drops excluded records, stamps every survivor with the execution
// root and sorts the result by file.
func BuildCompileDatabase(records []CompileRecord, executionRoot string) ([]CompileRecord, error) {
	db := make([]CompileRecord, 0, len(records))
	for i, rec := range records {
		if len(rec) == 0 {
			continue
		}
		if _, ok := rec.File(); !ok {
			return nil, fmt.Errorf("record %d has no \"file\" field", i)
		}
		rec["directory"] = executionRoot
		db = append(db, rec)
	}
	sort.SliceStable(db, func(i, j int) bool {
		fi, _ := db[i].File()
		fj, _ := db[j].File()
		return fi < fj
	})
	return db, nil
}
