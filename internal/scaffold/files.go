package scaffold

// TutorialDirName is the default directory the tutorial is written to.
const TutorialDirName = "tutorial-stub"

// tutorialFile is one file of the tutorial tree, relative to its root.
type tutorialFile struct {
	Path       string
	Content    string
	Executable bool
}

// Root scripts drive the whole workspace; the library scripts build only
// libs/lib1. Each level has its own .ddd so discovery picks the closest one.
const rootMk = `#!/bin/bash
echo "[root] mk: building workspace"
if [ ! -d "libs/lib1" ]; then
    echo "[root] mk: libs/lib1 missing" >&2
    exit 1
fi
(cd libs/lib1 && ./lmk) || exit 1
echo "[root] mk: done"
`

const rootTest = `#!/bin/bash
echo "[root] test: verifying workspace"
if (cd libs/lib1 && ./test/run); then
    echo "[root] test: all passed"
    exit 0
fi
exit 1
`

const rootConfig = `{
  "targets": {
    "dev": {
      "build": { "cmd": "./mk", "filter": ["raw"] },
      "verify": { "cmd": "./test", "filter": ["raw"] }
    }
  }
}
`

const rootWait = `#!/bin/bash
# Root daemon entry point: build and verify from the workspace root.
SCRIPT_DIR="$(cd "$(dirname "${BASH_SOURCE[0]}")" && pwd)"
cd "$(dirname "$SCRIPT_DIR")" || exit 1

echo "[daemon:root] build + verify"
./mk && ./test
`

const libLmk = `#!/bin/bash
echo "[lib1] lmk: compiling"
gcc -c src/math.c -o math.o
`

const libTestRun = `#!/bin/bash
echo "[lib1] test/run: checking build output"
if [ -f "math.o" ]; then
    echo "[lib1] PASS math.o exists"
    exit 0
fi
echo "[lib1] FAIL math.o missing"
exit 1
`

const libConfig = `{
  "targets": {
    "dev": {
      "build": { "cmd": "./lmk", "filter": ["raw"] },
      "verify": { "cmd": "./test/run", "filter": ["raw"] }
    }
  }
}
`

const libWait = `#!/bin/bash
# Library daemon entry point: build and verify libs/lib1 only.
SCRIPT_DIR="$(cd "$(dirname "${BASH_SOURCE[0]}")" && pwd)"
cd "$(dirname "$SCRIPT_DIR")" || exit 1

echo "[daemon:lib1] build + verify"
./lmk && ./test/run
`

const libMathC = `#include <stdio.h>

int add(int a, int b) { return a + b; }
`

// Target files list the paths a view of that target checks out.
const rootTarget = "mk\ntest\nlibs/lib1\n"
const libTarget = "libs/lib1/src\nlibs/lib1/test\n"

var tutorialFiles = []tutorialFile{
	{Path: "mk", Content: rootMk, Executable: true},
	{Path: "test", Content: rootTest, Executable: true},
	{Path: ".ddd/config.json", Content: rootConfig},
	{Path: ".ddd/wait", Content: rootWait, Executable: true},
	{Path: "libs/lib1/lmk", Content: libLmk, Executable: true},
	{Path: "libs/lib1/test/run", Content: libTestRun, Executable: true},
	{Path: "libs/lib1/src/math.c", Content: libMathC},
	{Path: "libs/lib1/.ddd/config.json", Content: libConfig},
	{Path: "libs/lib1/.ddd/wait", Content: libWait, Executable: true},
	{Path: "targets/root.txt", Content: rootTarget},
	{Path: "targets/lib1.txt", Content: libTarget},
}
