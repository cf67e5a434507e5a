package config

// StarterConfig is the config.json written by `viiv init`.
const StarterConfig = `{
    "options": {
        "token_colors_total": 7,
        "token_colors_gradations_total": 60,
        "token_colors_min": 120,
        "token_colors_max": 180,
        "token_colors_saturation": 0.35,
        "token_colors_lightness": 0.15,
        "workbench_colors_total": 7,
        "workbench_colors_gradations_total": 60,
        "workbench_colors_min": 19,
        "workbench_colors_max": 20,
        "workbench_colors_saturation": 0.2,
        "workbench_colors_lightness": 0.09,
        "workbench_base_color_name": "BLUE",
        "discard_dark_red_color": true,
        "random_decoration_color": true,
        "random_decoration_color_basic_range": [1, 7],
        "static_decoration_color_basic_range": [6, 7]
    },
    "themes": [
        {
            "name": "viiv-dark-blue",
            "workbench_base_color_name": "BLUE"
        },
        {
            "name": "viiv-dark-green",
            "workbench_base_color_name": "GREEN"
        },
        {
            "name": "viiv-dark-gray",
            "workbench_base_color_name": "GRAY",
            "workbench_colors_min": 18,
            "workbench_colors_max": 22
        },
        {
            "name": "viiv-github-blue",
            "workbench_base_colors": ["#010409", "#0d1117", "#161b22", "#010409"]
        }
    ],
    "default": [
        {
            "groups": ["default"],
            "color": {
                "basic_range": [8, 15],
                "light_range": [10, 30]
            }
        },
        {
            "groups": ["shadow", "widget.shadow", "scrollbar.shadow"],
            "color": {
                "hex": "#000000",
                "alpha_range": ["0x30", "0x60"]
            }
        },
        {
            "groups": ["contrastBorder", "contrastActiveBorder"],
            "color": {
                "hex": "#00000000"
            }
        }
    ],
    "background": [
        {
            "groups": ["background", "editor.background", "sideBar.background", "activityBar.background", "panel.background", "statusBar.background", "titleBar.activeBackground"],
            "color": {
                "basic_range": [8, 15],
                "light_range": [0, 5]
            }
        },
        {
            "groups": ["inactiveBackground", "titleBar.inactiveBackground", "tab.inactiveBackground"],
            "color": {
                "basic_range": [8, 15],
                "light_range": [5, 10]
            }
        },
        {
            "groups": ["hoverBackground", "list.hoverBackground", "list.activeSelectionBackground", ".*selection.*background"],
            "color": {
                "basic_range": [8, 15],
                "light_range": [15, 25],
                "alpha_range": ["0x80", "0xc0"]
            }
        }
    ],
    "foreground": [
        {
            "groups": ["foreground", "editor.foreground", "sideBar.foreground", "statusBar.foreground"],
            "color": {
                "basic_range": [8, 15],
                "light_range": [50, 60]
            }
        },
        {
            "groups": ["inactiveForeground", "descriptionForeground", "editorLineNumber.foreground", "tab.inactiveForeground"],
            "color": {
                "basic_range": [8, 15],
                "light_range": [30, 40]
            }
        },
        {
            "groups": ["errorForeground", "editorError.foreground"],
            "color": {
                "hex": "#c04040"
            }
        }
    ],
    "border": [
        {
            "groups": ["border", "panel.border", "sideBar.border", "tab.border", "editorGroup.border"],
            "color": {
                "basic_range": [8, 15],
                "light_range": [10, 20],
                "alpha_range": ["0x60", "0xa0"]
            }
        }
    ],
    "highlight": [
        {
            "groups": ["decoration", "activeBorder", "focusBorder", "badge.background", "activityBarBadge.background", "progressBar.background", "tab.activeBorderTop"],
            "color": {
                "basic_range": [1, 7],
                "light_range": [20, 40]
            }
        },
        {
            "groups": ["highlightBackground", "findMatchHighlightBackground", "wordHighlightBackground"],
            "color": {
                "basic_range": [1, 7],
                "light_range": [10, 20],
                "alpha_range": ["0x40", "0x80"]
            }
        }
    ],
    "token": [
        {
            "groups": ["token_default"],
            "color": {
                "basic_range": [1, 7],
                "light_range": [30, 60]
            }
        },
        {
            "groups": ["comment", "punctuation.definition.comment"],
            "color": {
                "basic_range": [8, 15],
                "light_range": [35, 45]
            }
        },
        {
            "groups": ["keyword", "storage", "storage.type"],
            "color": {
                "basic_range": [1, 2],
                "light_range": [40, 60]
            }
        },
        {
            "groups": ["string", "string.quoted"],
            "color": {
                "basic_range": [2, 3],
                "light_range": [40, 60]
            }
        },
        {
            "groups": ["entity.name.function", "support.function"],
            "color": {
                "basic_range": [3, 4],
                "light_range": [40, 60]
            }
        },
        {
            "groups": ["variable", "variable.parameter"],
            "color": {
                "basic_range": [4, 5],
                "light_range": [40, 60]
            }
        },
        {
            "groups": ["constant", "constant.numeric", "constant.language"],
            "color": {
                "basic_range": [5, 6],
                "light_range": [40, 60]
            }
        },
        {
            "groups": ["entity.name.type", "support.type", "entity.name.class"],
            "color": {
                "basic_range": [6, 7],
                "light_range": [40, 60]
            }
        }
    ]
}
`
