package document

// DefaultContent is the text of a fresh document.
const DefaultContent = "# Welcome to Markdown Editor\n" +
	"\n" +
	"This is a **live demo** of the new editor.\n" +
	"\n" +
	"## Features\n" +
	"- [x] Real-time Preview\n" +
	"- [x] GitHub Flavored Markdown\n" +
	"- [x] Formatting shortcuts (*ctrl+b*, *ctrl+t*, *ctrl+k*)\n" +
	"- [x] Syntax Highlighting\n" +
	"\n" +
	"## Code Example\n" +
	"```python\n" +
	"def hello():\n" +
	"    print(\"Hello World\")\n" +
	"```\n" +
	"\n" +
	"## Tables\n" +
	"| Feature | Status |\n" +
	"| :--- | :--- |\n" +
	"| Themes | ✅ |\n" +
	"| Emoji | ✅ |\n" +
	"| Export | ✅ |\n" +
	"\n" +
	"> \"Simplicity is the ultimate sophistication.\" - Leonardo da Vinci\n"
