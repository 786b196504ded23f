package std

// StaticPackages lists the framework-runtime modules that must be imported
// before anything else in their group. Order is priority: earlier entries
// come first.
var StaticPackages = []string{
	"react",
	"react-native",
}

// IsStaticPackage checks if an import path is one of the static framework packages
func IsStaticPackage(importPath string) bool {
	_, ok := StaticRank(importPath)
	return ok
}

// StaticRank returns the position of importPath in StaticPackages
func StaticRank(importPath string) (int, bool) {
	for i, pkg := range StaticPackages {
		if pkg == importPath {
			return i, true
		}
	}
	return -1, false
}
