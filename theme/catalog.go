package theme

// catalog lists every theme in picker order. Colors follow each theme's
// published palette.
var catalog = []Theme{
	{ID: "dark", Name: "Dark", Dark: true, Palette: Palette{Bg: "#141729", Fg: "#ffffff", Primary: "#41b883", Border: "#2d3245", Surface: "#1d2236", SurfaceHighlight: "#2d3245", EditorBg: "#0f111f"}},
	{ID: "light", Name: "Light", Dark: false, Palette: Palette{Bg: "#f5f7fa", Fg: "#2d3245", Primary: "#41b883", Border: "#e1e4e8", Surface: "#ffffff", SurfaceHighlight: "#e1e4e8", EditorBg: "#ffffff"}},
	{ID: "dracula", Name: "Dracula", Dark: true, Palette: Palette{Bg: "#282a36", Fg: "#f8f8f2", Primary: "#ff79c6", Border: "#44475a", Surface: "#44475a", SurfaceHighlight: "#6272a4", EditorBg: "#21222c"}},
	{ID: "monokai", Name: "Monokai", Dark: true, Palette: Palette{Bg: "#272822", Fg: "#f8f8f2", Primary: "#a6e22e", Border: "#3e3d32", Surface: "#3e3d32", SurfaceHighlight: "#49483e", EditorBg: "#1e1f1c"}},
	{ID: "nord-dark", Name: "Nord Dark", Dark: true, Palette: Palette{Bg: "#2e3440", Fg: "#d8dee9", Primary: "#88c0d0", Border: "#3b4252", Surface: "#3b4252", SurfaceHighlight: "#434c5e", EditorBg: "#242933"}},
	{ID: "nord-light", Name: "Nord Light", Dark: false, Palette: Palette{Bg: "#eceff4", Fg: "#2e3440", Primary: "#5e81ac", Border: "#d8dee9", Surface: "#e5e9f0", SurfaceHighlight: "#d8dee9", EditorBg: "#ffffff"}},
	{ID: "solarized-dark", Name: "Solarized Dark", Dark: true, Palette: Palette{Bg: "#002b36", Fg: "#839496", Primary: "#b58900", Border: "#073642", Surface: "#073642", SurfaceHighlight: "#586e75", EditorBg: "#00212b"}},
	{ID: "solarized-light", Name: "Solarized Light", Dark: false, Palette: Palette{Bg: "#fdf6e3", Fg: "#657b83", Primary: "#b58900", Border: "#eee8d5", Surface: "#eee8d5", SurfaceHighlight: "#93a1a1", EditorBg: "#fffbf0"}},
	{ID: "atom-one-dark", Name: "Atom One Dark", Dark: true, Palette: Palette{Bg: "#282c34", Fg: "#abb2bf", Primary: "#61afef", Border: "#3e4451", Surface: "#21252b", SurfaceHighlight: "#3e4451", EditorBg: "#21252b"}},
	{ID: "atom-one-light", Name: "Atom One Light", Dark: false, Palette: Palette{Bg: "#fafafa", Fg: "#383a42", Primary: "#4078f2", Border: "#e5e5e6", Surface: "#ffffff", SurfaceHighlight: "#e5e5e6", EditorBg: "#ffffff"}},
	{ID: "cyberpunk", Name: "Cyberpunk", Dark: true, Palette: Palette{Bg: "#2d2b55", Fg: "#f8f8f2", Primary: "#ff0055", Border: "#1e1c3b", Surface: "#1e1c3b", SurfaceHighlight: "#4d4b85", EditorBg: "#232142"}},
	{ID: "cyberpunk-scarlet", Name: "Cyberpunk Scarlet", Dark: true, Palette: Palette{Bg: "#120b10", Fg: "#ff0055", Primary: "#00ff9f", Border: "#2d1b25", Surface: "#1f1118", SurfaceHighlight: "#2d1b25", EditorBg: "#0a0609"}},
	{ID: "plastic-world", Name: "Plastic World", Dark: true, Palette: Palette{Bg: "#252b45", Fg: "#e9e9f2", Primary: "#e06c75", Border: "#343d63", Surface: "#2f3657", SurfaceHighlight: "#343d63", EditorBg: "#1d2236"}},
	{ID: "hacker-green", Name: "Hacker Green", Dark: true, Palette: Palette{Bg: "#0d1117", Fg: "#00ff00", Primary: "#00ff00", Border: "#161b22", Surface: "#0d1117", SurfaceHighlight: "#161b22", EditorBg: "#000000"}},
	{ID: "hacker-blue", Name: "Hacker Blue", Dark: true, Palette: Palette{Bg: "#0d1117", Fg: "#00aaff", Primary: "#00aaff", Border: "#161b22", Surface: "#0d1117", SurfaceHighlight: "#161b22", EditorBg: "#000000"}},
	{ID: "catppuccin-mocha", Name: "Catppuccin Mocha", Dark: true, Palette: Palette{Bg: "#1e1e2e", Fg: "#cdd6f4", Primary: "#cba6f7", Border: "#313244", Surface: "#181825", SurfaceHighlight: "#313244", EditorBg: "#181825"}},
	{ID: "catppuccin-latte", Name: "Catppuccin Latte", Dark: false, Palette: Palette{Bg: "#eff1f5", Fg: "#4c4f69", Primary: "#8839ef", Border: "#e6e9ef", Surface: "#dce0e8", SurfaceHighlight: "#ccd0da", EditorBg: "#ffffff"}},
	{ID: "rose-pine", Name: "Rosé Pine", Dark: true, Palette: Palette{Bg: "#191724", Fg: "#e0def4", Primary: "#ebbcba", Border: "#26233a", Surface: "#1f1d2e", SurfaceHighlight: "#26233a", EditorBg: "#12101b"}},
	{ID: "rose-pine-moon", Name: "Rosé Pine Moon", Dark: true, Palette: Palette{Bg: "#232136", Fg: "#e0def4", Primary: "#ea9a97", Border: "#393552", Surface: "#2a273f", SurfaceHighlight: "#393552", EditorBg: "#1d1b2d"}},
	{ID: "rose-pine-dawn", Name: "Rosé Pine Dawn", Dark: false, Palette: Palette{Bg: "#faf4ed", Fg: "#575279", Primary: "#d7827e", Border: "#f2e9e1", Surface: "#fffaf3", SurfaceHighlight: "#f2e9e1", EditorBg: "#fffaf3"}},
	{ID: "flexoki-dark", Name: "Flexoki Dark", Dark: true, Palette: Palette{Bg: "#100f0f", Fg: "#cecdc3", Primary: "#da702c", Border: "#282726", Surface: "#1c1b1a", SurfaceHighlight: "#282726", EditorBg: "#0a0909"}},
	{ID: "flexoki-light", Name: "Flexoki Light", Dark: false, Palette: Palette{Bg: "#fffcf0", Fg: "#100f0f", Primary: "#d14d28", Border: "#e6e4d9", Surface: "#f2f0e5", SurfaceHighlight: "#e6e4d9", EditorBg: "#ffffff"}},
	{ID: "everforest-dark", Name: "Everforest Dark", Dark: true, Palette: Palette{Bg: "#2b3339", Fg: "#d3c6aa", Primary: "#a7c080", Border: "#323c41", Surface: "#323c41", SurfaceHighlight: "#3a454a", EditorBg: "#232a2e"}},
	{ID: "everforest-light", Name: "Everforest Light", Dark: false, Palette: Palette{Bg: "#fdf6e3", Fg: "#5c6a72", Primary: "#93b259", Border: "#f4f0d9", Surface: "#f4f0d9", SurfaceHighlight: "#efebd4", EditorBg: "#fffbf0"}},
	{ID: "1984-dark", Name: "1984 Dark", Dark: true, Palette: Palette{Bg: "#0d0e15", Fg: "#ff77ff", Primary: "#ff0055", Border: "#1a1c29", Surface: "#13141f", SurfaceHighlight: "#1a1c29", EditorBg: "#08080c"}},
	{ID: "1984-light", Name: "1984 Light", Dark: false, Palette: Palette{Bg: "#f5f5f5", Fg: "#2d2d2d", Primary: "#ff0055", Border: "#e0e0e0", Surface: "#ffffff", SurfaceHighlight: "#e0e0e0", EditorBg: "#ffffff"}},
	{ID: "gruvbox-dark", Name: "Gruvbox Dark", Dark: true, Palette: Palette{Bg: "#282828", Fg: "#ebdbb2", Primary: "#fb4934", Border: "#3c3836", Surface: "#3c3836", SurfaceHighlight: "#504945", EditorBg: "#1d2021"}},
	{ID: "gruvbox-light", Name: "Gruvbox Light", Dark: false, Palette: Palette{Bg: "#fbf1c7", Fg: "#3c3836", Primary: "#cc241d", Border: "#ebdbb2", Surface: "#ebdbb2", SurfaceHighlight: "#d5c4a1", EditorBg: "#f9f5d7"}},
	{ID: "tokyo-night", Name: "Tokyo Night", Dark: true, Palette: Palette{Bg: "#1a1b26", Fg: "#a9b1d6", Primary: "#7aa2f7", Border: "#24283b", Surface: "#24283b", SurfaceHighlight: "#414868", EditorBg: "#16161e"}},
	{ID: "tokyo-day", Name: "Tokyo Day", Dark: false, Palette: Palette{Bg: "#e1e2e7", Fg: "#3760bf", Primary: "#2e7de9", Border: "#d0d5e3", Surface: "#d0d5e3", SurfaceHighlight: "#b4b5b9", EditorBg: "#ffffff"}},
	{ID: "night-owl", Name: "Night Owl", Dark: true, Palette: Palette{Bg: "#011627", Fg: "#d6deeb", Primary: "#82aaff", Border: "#0b2942", Surface: "#0b2942", SurfaceHighlight: "#234d70", EditorBg: "#01111d"}},
	{ID: "light-owl", Name: "Light Owl", Dark: false, Palette: Palette{Bg: "#f0f0f0", Fg: "#403f53", Primary: "#2c7c77", Border: "#d6deeb", Surface: "#ffffff", SurfaceHighlight: "#d6deeb", EditorBg: "#ffffff"}},
	{ID: "cobalt2", Name: "Cobalt2", Dark: true, Palette: Palette{Bg: "#193549", Fg: "#ffffff", Primary: "#ffc600", Border: "#15232d", Surface: "#15232d", SurfaceHighlight: "#35495e", EditorBg: "#132836"}},
	{ID: "kanagawa-dragon", Name: "Kanagawa Dragon", Dark: true, Palette: Palette{Bg: "#181616", Fg: "#c5c9c5", Primary: "#c4746e", Border: "#221e1e", Surface: "#1f1f28", SurfaceHighlight: "#221e1e", EditorBg: "#121111"}},
	{ID: "kanagawa-wave", Name: "Kanagawa Wave", Dark: true, Palette: Palette{Bg: "#1f1f28", Fg: "#dcd7ba", Primary: "#7e9cd8", Border: "#2a2a37", Surface: "#2a2a37", SurfaceHighlight: "#363646", EditorBg: "#16161d"}},
	{ID: "aura", Name: "Aura", Dark: true, Palette: Palette{Bg: "#15141b", Fg: "#edecee", Primary: "#a277ff", Border: "#21202e", Surface: "#1c1b22", SurfaceHighlight: "#21202e", EditorBg: "#110f14"}},
	{ID: "octocat-dark", Name: "Octocat Dark", Dark: true, Palette: Palette{Bg: "#0d1117", Fg: "#c9d1d9", Primary: "#58a6ff", Border: "#30363d", Surface: "#161b22", SurfaceHighlight: "#21262d", EditorBg: "#090c10"}},
	{ID: "octocat-light", Name: "Octocat Light", Dark: false, Palette: Palette{Bg: "#ffffff", Fg: "#24292f", Primary: "#0969da", Border: "#d0d7de", Surface: "#f6f8fa", SurfaceHighlight: "#d0d7de", EditorBg: "#ffffff"}},
	{ID: "ayu-dark", Name: "Ayu Dark", Dark: true, Palette: Palette{Bg: "#0b0e14", Fg: "#b3b1ad", Primary: "#e6b450", Border: "#151a25", Surface: "#0f131a", SurfaceHighlight: "#151a25", EditorBg: "#07090d"}},
	{ID: "ayu-light", Name: "Ayu Light", Dark: false, Palette: Palette{Bg: "#fafafa", Fg: "#5c6166", Primary: "#ff9940", Border: "#f0f0f0", Surface: "#ffffff", SurfaceHighlight: "#f0f0f0", EditorBg: "#ffffff"}},
	{ID: "romania-night", Name: "Romania Night", Dark: true, Palette: Palette{Bg: "#1c1c1c", Fg: "#e0e0e0", Primary: "#ffcc00", Border: "#333333", Surface: "#262626", SurfaceHighlight: "#333333", EditorBg: "#141414"}},
	{ID: "romania-day", Name: "Romania Day", Dark: false, Palette: Palette{Bg: "#f2f2f2", Fg: "#333333", Primary: "#d62d20", Border: "#e0e0e0", Surface: "#ffffff", SurfaceHighlight: "#e0e0e0", EditorBg: "#ffffff"}},
	{ID: "winter-night", Name: "Winter Night", Dark: true, Palette: Palette{Bg: "#101421", Fg: "#d4d4d4", Primary: "#00bfff", Border: "#1e2330", Surface: "#171b29", SurfaceHighlight: "#1e2330", EditorBg: "#0b0e17"}},
	{ID: "winter-day", Name: "Winter Day", Dark: false, Palette: Palette{Bg: "#f4f7fa", Fg: "#2f3b55", Primary: "#007acc", Border: "#e1e5eb", Surface: "#ffffff", SurfaceHighlight: "#e1e5eb", EditorBg: "#ffffff"}},
	{ID: "aubergine", Name: "Aubergine", Dark: true, Palette: Palette{Bg: "#290025", Fg: "#e0e0e0", Primary: "#ff50a0", Border: "#45003f", Surface: "#380032", SurfaceHighlight: "#45003f", EditorBg: "#1f001c"}},
	{ID: "peach-fresh", Name: "Peach Fresh", Dark: false, Palette: Palette{Bg: "#ffdab9", Fg: "#5c4033", Primary: "#ff6f61", Border: "#ffcba4", Surface: "#ffe5b4", SurfaceHighlight: "#ffcba4", EditorBg: "#ffe5b4"}},
	{ID: "diwali", Name: "Diwali", Dark: true, Palette: Palette{Bg: "#281a36", Fg: "#ffdf00", Primary: "#ff9933", Border: "#3d2b4d", Surface: "#322242", SurfaceHighlight: "#3d2b4d", EditorBg: "#1e1329"}},
	{ID: "movember", Name: "Movember", Dark: true, Palette: Palette{Bg: "#1a1100", Fg: "#e0e0e0", Primary: "#8b4513", Border: "#332200", Surface: "#261a00", SurfaceHighlight: "#332200", EditorBg: "#110b00"}},
	{ID: "halloween", Name: "Halloween", Dark: true, Palette: Palette{Bg: "#1a0505", Fg: "#ff9900", Primary: "#ff6600", Border: "#330a0a", Surface: "#260808", SurfaceHighlight: "#330a0a", EditorBg: "#110303"}},
	{ID: "dia-de-muertos", Name: "Dia De Muertos", Dark: true, Palette: Palette{Bg: "#1a1a1a", Fg: "#ffffff", Primary: "#ff00ff", Border: "#333333", Surface: "#262626", SurfaceHighlight: "#333333", EditorBg: "#111111"}},
	{ID: "silver-aerogel", Name: "Silver Aerogel", Dark: false, Palette: Palette{Bg: "#808080", Fg: "#000000", Primary: "#c0c0c0", Border: "#a0a0a0", Surface: "#909090", SurfaceHighlight: "#a0a0a0", EditorBg: "#707070"}},
	{ID: "manhattan", Name: "Manhattan", Dark: true, Palette: Palette{Bg: "#111111", Fg: "#e0e0e0", Primary: "#555555", Border: "#333333", Surface: "#222222", SurfaceHighlight: "#333333", EditorBg: "#0a0a0a"}},
	{ID: "grass", Name: "Grass", Dark: true, Palette: Palette{Bg: "#1a3300", Fg: "#e0e0e0", Primary: "#66cc00", Border: "#264d00", Surface: "#204000", SurfaceHighlight: "#264d00", EditorBg: "#112200"}},
	{ID: "man-page", Name: "Man Page", Dark: false, Palette: Palette{Bg: "#fef49c", Fg: "#000000", Primary: "#000000", Border: "#e6db8b", Surface: "#fdf08e", SurfaceHighlight: "#e6db8b", EditorBg: "#fdf08e"}},
	{ID: "novel", Name: "Novel", Dark: false, Palette: Palette{Bg: "#dfdbe5", Fg: "#3b3b3b", Primary: "#990000", Border: "#d1cdd7", Surface: "#e8e4ee", SurfaceHighlight: "#d1cdd7", EditorBg: "#e8e4ee"}},
	{ID: "ocean", Name: "Ocean", Dark: true, Palette: Palette{Bg: "#224fbc", Fg: "#ffffff", Primary: "#00ffff", Border: "#1b3f96", Surface: "#1e46a8", SurfaceHighlight: "#1b3f96", EditorBg: "#1b3f96"}},
	{ID: "red-sands", Name: "Red Sands", Dark: true, Palette: Palette{Bg: "#7a251e", Fg: "#f7f1ff", Primary: "#dfc4b6", Border: "#621d18", Surface: "#6d211b", SurfaceHighlight: "#621d18", EditorBg: "#6d211b"}},
	{ID: "homebrew", Name: "Homebrew", Dark: true, Palette: Palette{Bg: "#000000", Fg: "#00ff00", Primary: "#00ff00", Border: "#333333", Surface: "#111111", SurfaceHighlight: "#333333", EditorBg: "#000000"}},
	{ID: "basic", Name: "Basic", Dark: false, Palette: Palette{Bg: "#ffffff", Fg: "#000000", Primary: "#0000ff", Border: "#cccccc", Surface: "#f0f0f0", SurfaceHighlight: "#e0e0e0", EditorBg: "#ffffff"}},
	{ID: "pro", Name: "Pro", Dark: true, Palette: Palette{Bg: "#000000", Fg: "#ffffff", Primary: "#ffffff", Border: "#333333", Surface: "#111111", SurfaceHighlight: "#333333", EditorBg: "#000000"}},
}
