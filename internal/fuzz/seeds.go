package fuzztests

import "testing"

const maxSeedBytes = 64 << 10 // 64 KiB cap for corpus entries

// languageSeeds covers the syntactic territory the front end models: every
// compound statement form, string flavors, joined lines and the indentation
// edge cases, plus a few deliberately malformed inputs.
var languageSeeds = []string{
	"",
	"x = 1\n",
	"def f(a, b=1, c=[]):\n    return a\n",
	"class FooBar(Base):\n    def method(self):\n        pass\n",
	"for i, v in enumerate(xs):\n    total += v\n",
	"with open(p) as fh, open(q) as gh:\n    pass\n",
	"if a:\n    b = 1\nelif c:\n    d = 2\nelse:\n    e = 3\n",
	"try:\n    x = 1\nexcept ValueError as err:\n    pass\nfinally:\n    y = 2\n",
	"while True:\n    break\n",
	"async def fetch(url):\n    await go(url)\n",
	"s = '''triple\nquoted'''\nt = rb'raw bytes'\nu = f'{x!r}'\n",
	"x = (1 +\n     2 +\n     3)\n",
	"y = 1 + \\\n    2\n",
	"a = 1; b = 2;\n",
	"x: int = 1\n(a, b), c = d\n",
	"\tx = 1\n",
	"def f(\n",
	"s = 'unterminated\n",
	"if a:\n        b = 1\n    c = 2\n",
	"x = 1)\n",
	"# just a comment\n\n\n\n",
}

func addCorpusSeeds(f *testing.F) {
	for _, seed := range languageSeeds {
		f.Add(clampSeed([]byte(seed)))
	}
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}
