// Package icon は、UI で使用するアイコン名と lucide アイコンの対応表を提供します。
package icon

import "sort"

// Name は認識されるアイコン名です。
type Name string

// Icon は描画可能なアイコンの参照です。Lucide はフロントエンドが使う lucide のアイコン名なのだ。
type Icon struct {
	Name   Name   `json:"name"`
	Lucide string `json:"lucide"`
}

var icons = map[Name]string{
	"Home":         "home",
	"Zap":          "zap",
	"Brush":        "brush",
	"LayoutGrid":   "layout-grid",
	"Settings":     "settings",
	"Star":         "star",
	"Heart":        "heart",
	"Bot":          "bot",
	"ImageIcon":    "image",
	"Search":       "search",
	"X":            "x",
	"Sparkles":     "sparkles",
	"Wand2":        "wand-2",
	"Info":         "info",
	"RefreshCcw":   "refresh-ccw",
	"BookOpen":     "book-open",
	"Laptop":       "laptop",
	"Smartphone":   "smartphone",
	"Tablet":       "tablet",
	"ShieldCheck":  "shield-check",
	"KeyRound":     "key-round",
	"PlusCircle":   "plus-circle",
	"Trash2":       "trash-2",
	"Users":        "users",
	"Send":         "send",
	"Trophy":       "trophy",
	"Mic":          "mic",
	"Volume2":      "volume-2",
	"UserPlus":     "user-plus",
	"Menu":         "menu",
	"Box":          "box",
	"Camera":       "camera",
	"List":         "list",
	"Filter":       "filter",
	"Truck":        "truck",
	"PieChart":     "pie-chart",
	"BarChart3":    "bar-chart-3",
	"Undo2":        "undo-2",
	"ShoppingCart": "shopping-cart",
	"Package":      "package",
	"HelpCircle":   "help-circle",
	"Copy":         "copy",
	"CreditCard":   "credit-card",
	"UserCircle":   "user-circle",
	"Ban":          "ban",
}

// Resolve は名前に対応するアイコンを返します。未知の名前の場合は false を返します（エラーではありません）。
func Resolve(name string) (Icon, bool) {
	lucide, ok := icons[Name(name)]
	if !ok {
		return Icon{}, false
	}
	return Icon{Name: Name(name), Lucide: lucide}, true
}

// Names は認識されるアイコン名をソート済みで返します。
func Names() []Name {
	names := make([]Name, 0, len(icons))
	for n := range icons {
		names = append(names, n)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

// All はすべてのアイコンを名前順で返します。
func All() []Icon {
	names := Names()
	all := make([]Icon, 0, len(names))
	for _, n := range names {
		all = append(all, Icon{Name: n, Lucide: icons[n]})
	}
	return all
}
