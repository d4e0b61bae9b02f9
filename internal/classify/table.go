package classify

// spec is one row of the classification table.
type spec struct {
	label    string
	category Category
	write    bool
}

func lang(label string) spec   { return spec{label, CategoryLanguage, false} }
func tool(label string) spec   { return spec{label, CategoryTool, false} }
func system(label string) spec { return spec{label, CategorySystem, false} }
func editor(label string) spec { return spec{label, CategoryEditor, true} }

func writes(s spec) spec {
	s.write = true
	return s
}

// commands maps a lowercase base command to its classification. Keys are
// exact matches against the extracted base command.
var commands = map[string]spec{
	// Python
	"python": lang("Python"), "python3": lang("Python"), "python2": lang("Python"),
	"py": lang("Python"), "pip": lang("Python"), "pip3": lang("Python"), "pip2": lang("Python"),
	"pipenv": lang("Python"), "poetry": lang("Python"), "conda": lang("Python"),
	"mamba": lang("Python"), "micromamba": lang("Python"), "pixi": lang("Python"),
	"jupyter": lang("Python"), "ipython": lang("Python"), "pytest": lang("Python"),
	"mypy": lang("Python"), "black": writes(lang("Python")), "flake8": lang("Python"),
	"pylint": lang("Python"), "isort": writes(lang("Python")), "bandit": lang("Python"),
	"autopep8": writes(lang("Python")), "pydocstyle": lang("Python"),

	// JavaScript / Node
	"node": lang("JavaScript"), "npm": lang("JavaScript"), "yarn": lang("JavaScript"),
	"npx": lang("JavaScript"), "pnpm": lang("JavaScript"), "bun": lang("JavaScript"),
	"webpack": writes(lang("JavaScript")), "vite": lang("JavaScript"),
	"parcel": writes(lang("JavaScript")), "next": lang("JavaScript"),
	"nuxt": lang("JavaScript"), "gatsby": lang("JavaScript"),

	// System languages
	"go": lang("Go"), "cargo": writes(lang("Rust")), "rustc": writes(lang("Rust")),
	"rustup": lang("Rust"), "gcc": writes(lang("C")), "g++": writes(lang("C++")),
	"clang": writes(lang("C")), "clang++": writes(lang("C++")),
	"zig": lang("Zig"), "nim": lang("Nim"), "crystal": lang("Crystal"),

	// JVM languages
	"java": lang("Java"), "javac": writes(lang("Java")), "mvn": writes(lang("Java")),
	"gradle": writes(lang("Java")), "kotlin": lang("Kotlin"),
	"scala": lang("Scala"), "sbt": writes(lang("Scala")),

	// Other languages
	"ruby": lang("Ruby"), "gem": lang("Ruby"), "bundle": lang("Ruby"), "rails": lang("Ruby"),
	"php": lang("PHP"), "composer": lang("PHP"), "artisan": lang("PHP"),
	"dotnet": lang("C#"), "nuget": lang("C#"),
	"swift": lang("Swift"), "swiftc": writes(lang("Swift")),
	"dart": lang("Dart"), "flutter": lang("Dart"),
	"elixir": lang("Elixir"), "mix": lang("Elixir"),
	"lua": lang("Lua"), "luarocks": lang("Lua"),
	"perl": lang("Perl"), "cpan": lang("Perl"),
	"r": lang("R"), "rscript": lang("R"),

	// Infrastructure tools
	"docker": tool("Docker"), "docker-compose": tool("Docker"), "podman": tool("Docker"),
	"kubectl": tool("Kubernetes"), "helm": tool("Kubernetes"), "k9s": tool("Kubernetes"),
	"terraform": tool("Terraform"), "terragrunt": tool("Terraform"),
	"ansible": tool("Ansible"), "ansible-playbook": tool("Ansible"),
	"vagrant": tool("Vagrant"),

	// Version control (write flag refined per subcommand)
	"git": tool("Git"), "gh": tool("Git"), "hub": tool("Git"), "gitk": tool("Git"),
	"svn": tool("Subversion"), "hg": tool("Mercurial"),

	// Editors
	"vim": editor("Vim"), "nvim": editor("Neovim"), "emacs": editor("Emacs"),
	"nano": editor("Nano"), "code": editor("VS Code"), "subl": editor("Sublime Text"),
	"atom": editor("Atom"),

	// Build systems
	"make": writes(tool("Make")), "cmake": writes(tool("CMake")),
	"ninja": writes(tool("Ninja")), "bazel": writes(tool("Bazel")),
	"buck": writes(tool("Buck")),

	// Network / transfer
	"ssh": tool("SSH"), "scp": writes(tool("SSH")), "sftp": tool("SSH"),
	"rsync": writes(tool("File Transfer")),
	"curl":  tool("HTTP"), "wget": tool("HTTP"), "httpie": tool("HTTP"),
	"http": tool("HTTP"), "https": tool("HTTP"),
	"ping": system("Network"), "netstat": system("Network"), "ss": system("Network"),
	"nmap": system("Network"), "iptables": writes(system("Network")),
	"ufw": writes(system("Network")), "firewall-cmd": writes(system("Network")),

	// System administration
	"systemctl": system("System Admin"), "service": system("System Admin"),
	"launchctl": system("System Admin"), "crontab": writes(system("System Admin")),
	"at": system("System Admin"), "jobs": system("System Admin"),
	"ps": system("System Admin"), "top": system("System Admin"),
	"htop": system("System Admin"), "btop": system("System Admin"),
	"kill": system("System Admin"), "killall": system("System Admin"),
	"pkill": system("System Admin"), "mount": writes(system("System Admin")),
	"umount": writes(system("System Admin")), "lsblk": system("System Admin"),
	"df": system("System Admin"), "du": system("System Admin"),
	"fdisk": writes(system("System Admin")), "free": system("System Admin"),
	"uptime": system("System Admin"), "uname": system("System Admin"),
	"whoami": system("System Admin"), "id": system("System Admin"),
	"groups": system("System Admin"), "sudo": system("System Admin"),
	"su": system("System Admin"), "chmod": writes(system("System Admin")),
	"chown": writes(system("System Admin")), "chgrp": writes(system("System Admin")),

	// File operations
	"ls": system("File Operations"), "dir": system("File Operations"),
	"find": system("File Operations"), "locate": system("File Operations"),
	"which": system("File Operations"), "whereis": system("File Operations"),
	"cp": writes(system("File Operations")), "mv": writes(system("File Operations")),
	"rm": writes(system("File Operations")), "mkdir": writes(system("File Operations")),
	"rmdir": writes(system("File Operations")), "touch": writes(system("File Operations")),
	"ln": writes(system("File Operations")), "readlink": system("File Operations"),
	"tar": writes(system("Archive")), "gzip": writes(system("Archive")),
	"gunzip": writes(system("Archive")), "zip": writes(system("Archive")),
	"unzip": writes(system("Archive")), "7z": writes(system("Archive")),
	"rar": writes(system("Archive")), "unrar": writes(system("Archive")),

	// Text processing
	"cat": system("Text Processing"), "less": system("Text Processing"),
	"more": system("Text Processing"), "head": system("Text Processing"),
	"tail": system("Text Processing"), "grep": system("Text Processing"),
	"egrep": system("Text Processing"), "fgrep": system("Text Processing"),
	"rg": system("Text Processing"), "ag": system("Text Processing"),
	"ack": system("Text Processing"), "sed": system("Text Processing"),
	"awk": system("Text Processing"), "sort": system("Text Processing"),
	"uniq": system("Text Processing"), "wc": system("Text Processing"),
	"cut": system("Text Processing"), "tr": system("Text Processing"),
	"jq": system("Text Processing"), "yq": system("Text Processing"),

	// Databases
	"mysql": tool("SQL"), "psql": tool("PostgreSQL"), "sqlite3": tool("SQLite"),
	"mongo": tool("MongoDB"), "mongosh": tool("MongoDB"), "redis-cli": tool("Redis"),
	"influx": tool("Database"), "clickhouse": tool("Database"), "cassandra": tool("Database"),

	// Package managers
	"brew": tool("Package Manager"), "apt": tool("Package Manager"),
	"apt-get": tool("Package Manager"), "yum": tool("Package Manager"),
	"dnf": tool("Package Manager"), "zypper": tool("Package Manager"),
	"pacman": tool("Package Manager"), "emerge": tool("Package Manager"),
	"choco": tool("Package Manager"), "scoop": tool("Package Manager"),
	"winget": tool("Package Manager"), "flatpak": tool("Package Manager"),
	"snap": tool("Package Manager"),

	// Navigation
	"cd": system("Navigation"), "pushd": system("Navigation"),
	"popd": system("Navigation"), "dirs": system("Navigation"),
	"pwd": system("Navigation"), "tree": system("Navigation"),
	"exa": system("Navigation"), "lsd": system("Navigation"),

	// Shell features and documentation
	"history": system("Shell"), "alias": system("Shell"), "unalias": system("Shell"),
	"type": system("Shell"), "command": system("Shell"), "builtin": system("Shell"),
	"hash": system("Shell"), "help": system("Shell"),
	"man": system("Documentation"), "info": system("Documentation"),
	"tldr": system("Documentation"), "whatis": system("Documentation"),
	"apropos": system("Documentation"),
}

// vcsWriteSubcommands refines the write flag of version-control tools by
// their first subcommand. This is policy data: unmatched subcommands inherit
// the tool's default (read), and the sets are expected to grow.
var vcsWriteSubcommands = map[string]map[string]bool{
	"git": {
		"add": true, "am": true, "apply": true, "checkout": true,
		"cherry-pick": true, "clean": true, "clone": true, "commit": true,
		"fetch": false, "init": true, "merge": true, "mv": true, "pull": true,
		"push": true, "rebase": true, "reset": true, "restore": true,
		"revert": true, "rm": true, "stash": true, "switch": true, "tag": true,
		"status": false, "diff": false, "log": false, "show": false,
		"blame": false, "branch": false,
	},
	"svn": {
		"add": true, "checkout": true, "ci": true, "co": true, "commit": true,
		"copy": true, "delete": true, "import": true, "merge": true,
		"mkdir": true, "move": true, "revert": true, "rm": true,
		"switch": true, "update": true, "up": true,
	},
	"hg": {
		"add": true, "backout": true, "commit": true, "graft": true,
		"merge": true, "pull": true, "push": true, "rebase": true,
		"revert": true, "rm": true, "strip": true, "update": true,
	},
}
