// Code generated by trove-regen from the pypa/trove-classifiers dataset.
// Only the PypaVersion constant and the block between the trove markers
// are rewritten; everything else in this file is hand-maintained.

package classifiers

// PypaVersion is the release of pypa/trove-classifiers this enumeration
// was generated from.
const PypaVersion = "2024.10.16"

// One exported identifier per classifier, in the order published by PyPA.
// Registration order is what All and Parse see.
var (
	// trove:begin
	// Development Status :: 1 - Planning
	DevelopmentStatus__1Planning = register("Development Status :: 1 - Planning")
	// Development Status :: 2 - Pre-Alpha
	DevelopmentStatus__2PreAlpha = register("Development Status :: 2 - Pre-Alpha")
	// Development Status :: 3 - Alpha
	DevelopmentStatus__3Alpha = register("Development Status :: 3 - Alpha")
	// Development Status :: 4 - Beta
	DevelopmentStatus__4Beta = register("Development Status :: 4 - Beta")
	// Development Status :: 5 - Production/Stable
	DevelopmentStatus__5ProductionStable = register("Development Status :: 5 - Production/Stable")
	// Development Status :: 6 - Mature
	DevelopmentStatus__6Mature = register("Development Status :: 6 - Mature")
	// Development Status :: 7 - Inactive
	DevelopmentStatus__7Inactive = register("Development Status :: 7 - Inactive")
	// Environment :: Console
	Environment__Console = register("Environment :: Console")
	// Environment :: Console :: Curses
	Environment__Console__Curses = register("Environment :: Console :: Curses")
	// Environment :: Console :: Framebuffer
	Environment__Console__Framebuffer = register("Environment :: Console :: Framebuffer")
	// Environment :: Console :: Newt
	Environment__Console__Newt = register("Environment :: Console :: Newt")
	// Environment :: Console :: svgalib
	Environment__Console__svgalib = register("Environment :: Console :: svgalib")
	// Environment :: GPU
	Environment__GPU = register("Environment :: GPU")
	// Environment :: GPU :: NVIDIA CUDA
	Environment__GPU__NVIDIACUDA = register("Environment :: GPU :: NVIDIA CUDA")
	// Environment :: GPU :: NVIDIA CUDA :: 1.0
	Environment__GPU__NVIDIACUDA__1_0 = register("Environment :: GPU :: NVIDIA CUDA :: 1.0")
	// Environment :: GPU :: NVIDIA CUDA :: 1.1
	Environment__GPU__NVIDIACUDA__1_1 = register("Environment :: GPU :: NVIDIA CUDA :: 1.1")
	// Environment :: GPU :: NVIDIA CUDA :: 2.0
	Environment__GPU__NVIDIACUDA__2_0 = register("Environment :: GPU :: NVIDIA CUDA :: 2.0")
	// Environment :: GPU :: NVIDIA CUDA :: 2.1
	Environment__GPU__NVIDIACUDA__2_1 = register("Environment :: GPU :: NVIDIA CUDA :: 2.1")
	// Environment :: GPU :: NVIDIA CUDA :: 2.2
	Environment__GPU__NVIDIACUDA__2_2 = register("Environment :: GPU :: NVIDIA CUDA :: 2.2")
	// Environment :: GPU :: NVIDIA CUDA :: 2.3
	Environment__GPU__NVIDIACUDA__2_3 = register("Environment :: GPU :: NVIDIA CUDA :: 2.3")
	// Environment :: GPU :: NVIDIA CUDA :: 3.0
	Environment__GPU__NVIDIACUDA__3_0 = register("Environment :: GPU :: NVIDIA CUDA :: 3.0")
	// Environment :: GPU :: NVIDIA CUDA :: 3.1
	Environment__GPU__NVIDIACUDA__3_1 = register("Environment :: GPU :: NVIDIA CUDA :: 3.1")
	// Environment :: GPU :: NVIDIA CUDA :: 3.2
	Environment__GPU__NVIDIACUDA__3_2 = register("Environment :: GPU :: NVIDIA CUDA :: 3.2")
	// Environment :: GPU :: NVIDIA CUDA :: 4.0
	Environment__GPU__NVIDIACUDA__4_0 = register("Environment :: GPU :: NVIDIA CUDA :: 4.0")
	// Environment :: GPU :: NVIDIA CUDA :: 4.1
	Environment__GPU__NVIDIACUDA__4_1 = register("Environment :: GPU :: NVIDIA CUDA :: 4.1")
	// Environment :: GPU :: NVIDIA CUDA :: 4.2
	Environment__GPU__NVIDIACUDA__4_2 = register("Environment :: GPU :: NVIDIA CUDA :: 4.2")
	// Environment :: GPU :: NVIDIA CUDA :: 5.0
	Environment__GPU__NVIDIACUDA__5_0 = register("Environment :: GPU :: NVIDIA CUDA :: 5.0")
	// Environment :: GPU :: NVIDIA CUDA :: 5.5
	Environment__GPU__NVIDIACUDA__5_5 = register("Environment :: GPU :: NVIDIA CUDA :: 5.5")
	// Environment :: GPU :: NVIDIA CUDA :: 6.0
	Environment__GPU__NVIDIACUDA__6_0 = register("Environment :: GPU :: NVIDIA CUDA :: 6.0")
	// Environment :: GPU :: NVIDIA CUDA :: 6.5
	Environment__GPU__NVIDIACUDA__6_5 = register("Environment :: GPU :: NVIDIA CUDA :: 6.5")
	// Environment :: GPU :: NVIDIA CUDA :: 7.0
	Environment__GPU__NVIDIACUDA__7_0 = register("Environment :: GPU :: NVIDIA CUDA :: 7.0")
	// Environment :: GPU :: NVIDIA CUDA :: 7.5
	Environment__GPU__NVIDIACUDA__7_5 = register("Environment :: GPU :: NVIDIA CUDA :: 7.5")
	// Environment :: GPU :: NVIDIA CUDA :: 8.0
	Environment__GPU__NVIDIACUDA__8_0 = register("Environment :: GPU :: NVIDIA CUDA :: 8.0")
	// Environment :: GPU :: NVIDIA CUDA :: 9.0
	Environment__GPU__NVIDIACUDA__9_0 = register("Environment :: GPU :: NVIDIA CUDA :: 9.0")
	// Environment :: GPU :: NVIDIA CUDA :: 9.1
	Environment__GPU__NVIDIACUDA__9_1 = register("Environment :: GPU :: NVIDIA CUDA :: 9.1")
	// Environment :: GPU :: NVIDIA CUDA :: 9.2
	Environment__GPU__NVIDIACUDA__9_2 = register("Environment :: GPU :: NVIDIA CUDA :: 9.2")
	// Environment :: GPU :: NVIDIA CUDA :: 10.0
	Environment__GPU__NVIDIACUDA__10_0 = register("Environment :: GPU :: NVIDIA CUDA :: 10.0")
	// Environment :: GPU :: NVIDIA CUDA :: 10.1
	Environment__GPU__NVIDIACUDA__10_1 = register("Environment :: GPU :: NVIDIA CUDA :: 10.1")
	// Environment :: GPU :: NVIDIA CUDA :: 10.2
	Environment__GPU__NVIDIACUDA__10_2 = register("Environment :: GPU :: NVIDIA CUDA :: 10.2")
	// Environment :: GPU :: NVIDIA CUDA :: 11
	Environment__GPU__NVIDIACUDA__11 = register("Environment :: GPU :: NVIDIA CUDA :: 11")
	// Environment :: GPU :: NVIDIA CUDA :: 11.0
	Environment__GPU__NVIDIACUDA__11_0 = register("Environment :: GPU :: NVIDIA CUDA :: 11.0")
	// Environment :: GPU :: NVIDIA CUDA :: 11.1
	Environment__GPU__NVIDIACUDA__11_1 = register("Environment :: GPU :: NVIDIA CUDA :: 11.1")
	// Environment :: GPU :: NVIDIA CUDA :: 11.2
	Environment__GPU__NVIDIACUDA__11_2 = register("Environment :: GPU :: NVIDIA CUDA :: 11.2")
	// Environment :: GPU :: NVIDIA CUDA :: 11.3
	Environment__GPU__NVIDIACUDA__11_3 = register("Environment :: GPU :: NVIDIA CUDA :: 11.3")
	// Environment :: GPU :: NVIDIA CUDA :: 11.4
	Environment__GPU__NVIDIACUDA__11_4 = register("Environment :: GPU :: NVIDIA CUDA :: 11.4")
	// Environment :: GPU :: NVIDIA CUDA :: 11.5
	Environment__GPU__NVIDIACUDA__11_5 = register("Environment :: GPU :: NVIDIA CUDA :: 11.5")
	// Environment :: GPU :: NVIDIA CUDA :: 11.6
	Environment__GPU__NVIDIACUDA__11_6 = register("Environment :: GPU :: NVIDIA CUDA :: 11.6")
	// Environment :: GPU :: NVIDIA CUDA :: 11.7
	Environment__GPU__NVIDIACUDA__11_7 = register("Environment :: GPU :: NVIDIA CUDA :: 11.7")
	// Environment :: GPU :: NVIDIA CUDA :: 11.8
	Environment__GPU__NVIDIACUDA__11_8 = register("Environment :: GPU :: NVIDIA CUDA :: 11.8")
	// Environment :: GPU :: NVIDIA CUDA :: 12
	Environment__GPU__NVIDIACUDA__12 = register("Environment :: GPU :: NVIDIA CUDA :: 12")
	// Environment :: GPU :: NVIDIA CUDA :: 12 :: 12.0
	Environment__GPU__NVIDIACUDA__12__12_0 = register("Environment :: GPU :: NVIDIA CUDA :: 12 :: 12.0")
	// Environment :: GPU :: NVIDIA CUDA :: 12 :: 12.1
	Environment__GPU__NVIDIACUDA__12__12_1 = register("Environment :: GPU :: NVIDIA CUDA :: 12 :: 12.1")
	// Environment :: GPU :: NVIDIA CUDA :: 12 :: 12.2
	Environment__GPU__NVIDIACUDA__12__12_2 = register("Environment :: GPU :: NVIDIA CUDA :: 12 :: 12.2")
	// Environment :: GPU :: NVIDIA CUDA :: 12 :: 12.3
	Environment__GPU__NVIDIACUDA__12__12_3 = register("Environment :: GPU :: NVIDIA CUDA :: 12 :: 12.3")
	// Environment :: GPU :: NVIDIA CUDA :: 12 :: 12.4
	Environment__GPU__NVIDIACUDA__12__12_4 = register("Environment :: GPU :: NVIDIA CUDA :: 12 :: 12.4")
	// Environment :: GPU :: NVIDIA CUDA :: 12 :: 12.5
	Environment__GPU__NVIDIACUDA__12__12_5 = register("Environment :: GPU :: NVIDIA CUDA :: 12 :: 12.5")
	// Environment :: Handhelds/PDA's
	Environment__HandheldsPDAs = register("Environment :: Handhelds/PDA's")
	// Environment :: MacOS X
	Environment__MacOSX = register("Environment :: MacOS X")
	// Environment :: MacOS X :: Aqua
	Environment__MacOSX__Aqua = register("Environment :: MacOS X :: Aqua")
	// Environment :: MacOS X :: Carbon
	Environment__MacOSX__Carbon = register("Environment :: MacOS X :: Carbon")
	// Environment :: MacOS X :: Cocoa
	Environment__MacOSX__Cocoa = register("Environment :: MacOS X :: Cocoa")
	// Environment :: No Input/Output (Daemon)
	Environment__NoInputOutputDaemon = register("Environment :: No Input/Output (Daemon)")
	// Environment :: OpenStack
	Environment__OpenStack = register("Environment :: OpenStack")
	// Environment :: Other Environment
	Environment__OtherEnvironment = register("Environment :: Other Environment")
	// Environment :: Plugins
	Environment__Plugins = register("Environment :: Plugins")
	// Environment :: Web Environment
	Environment__WebEnvironment = register("Environment :: Web Environment")
	// Environment :: Web Environment :: Buffet
	Environment__WebEnvironment__Buffet = register("Environment :: Web Environment :: Buffet")
	// Environment :: Web Environment :: Mozilla
	Environment__WebEnvironment__Mozilla = register("Environment :: Web Environment :: Mozilla")
	// Environment :: Web Environment :: ToscaWidgets
	Environment__WebEnvironment__ToscaWidgets = register("Environment :: Web Environment :: ToscaWidgets")
	// Environment :: WebAssembly
	Environment__WebAssembly = register("Environment :: WebAssembly")
	// Environment :: WebAssembly :: Emscripten
	Environment__WebAssembly__Emscripten = register("Environment :: WebAssembly :: Emscripten")
	// Environment :: WebAssembly :: WASI
	Environment__WebAssembly__WASI = register("Environment :: WebAssembly :: WASI")
	// Environment :: Win32 (MS Windows)
	Environment__Win32MSWindows = register("Environment :: Win32 (MS Windows)")
	// Environment :: X11 Applications
	Environment__X11Applications = register("Environment :: X11 Applications")
	// Environment :: X11 Applications :: GTK
	Environment__X11Applications__GTK = register("Environment :: X11 Applications :: GTK")
	// Environment :: X11 Applications :: Gnome
	Environment__X11Applications__Gnome = register("Environment :: X11 Applications :: Gnome")
	// Environment :: X11 Applications :: KDE
	Environment__X11Applications__KDE = register("Environment :: X11 Applications :: KDE")
	// Environment :: X11 Applications :: Qt
	Environment__X11Applications__Qt = register("Environment :: X11 Applications :: Qt")
	// Framework :: AWS CDK
	Framework__AWSCDK = register("Framework :: AWS CDK")
	// Framework :: AWS CDK :: 1
	Framework__AWSCDK__1 = register("Framework :: AWS CDK :: 1")
	// Framework :: AWS CDK :: 2
	Framework__AWSCDK__2 = register("Framework :: AWS CDK :: 2")
	// Framework :: AiiDA
	Framework__AiiDA = register("Framework :: AiiDA")
	// Framework :: Ansible
	Framework__Ansible = register("Framework :: Ansible")
	// Framework :: AnyIO
	Framework__AnyIO = register("Framework :: AnyIO")
	// Framework :: Apache Airflow
	Framework__ApacheAirflow = register("Framework :: Apache Airflow")
	// Framework :: Apache Airflow :: Provider
	Framework__ApacheAirflow__Provider = register("Framework :: Apache Airflow :: Provider")
	// Framework :: AsyncIO
	Framework__AsyncIO = register("Framework :: AsyncIO")
	// Framework :: BEAT
	Framework__BEAT = register("Framework :: BEAT")
	// Framework :: BFG
	Framework__BFG = register("Framework :: BFG")
	// Framework :: Bob
	Framework__Bob = register("Framework :: Bob")
	// Framework :: Bottle
	Framework__Bottle = register("Framework :: Bottle")
	// Framework :: Buildout
	Framework__Buildout = register("Framework :: Buildout")
	// Framework :: Buildout :: Extension
	Framework__Buildout__Extension = register("Framework :: Buildout :: Extension")
	// Framework :: Buildout :: Recipe
	Framework__Buildout__Recipe = register("Framework :: Buildout :: Recipe")
	// Framework :: CastleCMS
	Framework__CastleCMS = register("Framework :: CastleCMS")
	// Framework :: CastleCMS :: Theme
	Framework__CastleCMS__Theme = register("Framework :: CastleCMS :: Theme")
	// Framework :: Celery
	Framework__Celery = register("Framework :: Celery")
	// Framework :: Chandler
	Framework__Chandler = register("Framework :: Chandler")
	// Framework :: CherryPy
	Framework__CherryPy = register("Framework :: CherryPy")
	// Framework :: CubicWeb
	Framework__CubicWeb = register("Framework :: CubicWeb")
	// Framework :: Dash
	Framework__Dash = register("Framework :: Dash")
	// Framework :: Datasette
	Framework__Datasette = register("Framework :: Datasette")
	// Framework :: Django
	Framework__Django = register("Framework :: Django")
	// Framework :: Django :: 1
	Framework__Django__1 = register("Framework :: Django :: 1")
	// Framework :: Django :: 1.4
	Framework__Django__1_4 = register("Framework :: Django :: 1.4")
	// Framework :: Django :: 1.5
	Framework__Django__1_5 = register("Framework :: Django :: 1.5")
	// Framework :: Django :: 1.6
	Framework__Django__1_6 = register("Framework :: Django :: 1.6")
	// Framework :: Django :: 1.7
	Framework__Django__1_7 = register("Framework :: Django :: 1.7")
	// Framework :: Django :: 1.8
	Framework__Django__1_8 = register("Framework :: Django :: 1.8")
	// Framework :: Django :: 1.9
	Framework__Django__1_9 = register("Framework :: Django :: 1.9")
	// Framework :: Django :: 1.10
	Framework__Django__1_10 = register("Framework :: Django :: 1.10")
	// Framework :: Django :: 1.11
	Framework__Django__1_11 = register("Framework :: Django :: 1.11")
	// Framework :: Django :: 2
	Framework__Django__2 = register("Framework :: Django :: 2")
	// Framework :: Django :: 2.0
	Framework__Django__2_0 = register("Framework :: Django :: 2.0")
	// Framework :: Django :: 2.1
	Framework__Django__2_1 = register("Framework :: Django :: 2.1")
	// Framework :: Django :: 2.2
	Framework__Django__2_2 = register("Framework :: Django :: 2.2")
	// Framework :: Django :: 3
	Framework__Django__3 = register("Framework :: Django :: 3")
	// Framework :: Django :: 3.0
	Framework__Django__3_0 = register("Framework :: Django :: 3.0")
	// Framework :: Django :: 3.1
	Framework__Django__3_1 = register("Framework :: Django :: 3.1")
	// Framework :: Django :: 3.2
	Framework__Django__3_2 = register("Framework :: Django :: 3.2")
	// Framework :: Django :: 4
	Framework__Django__4 = register("Framework :: Django :: 4")
	// Framework :: Django :: 4.0
	Framework__Django__4_0 = register("Framework :: Django :: 4.0")
	// Framework :: Django :: 4.1
	Framework__Django__4_1 = register("Framework :: Django :: 4.1")
	// Framework :: Django :: 4.2
	Framework__Django__4_2 = register("Framework :: Django :: 4.2")
	// Framework :: Django :: 5
	Framework__Django__5 = register("Framework :: Django :: 5")
	// Framework :: Django :: 5.0
	Framework__Django__5_0 = register("Framework :: Django :: 5.0")
	// Framework :: Django :: 5.1
	Framework__Django__5_1 = register("Framework :: Django :: 5.1")
	// Framework :: Django :: 5.2
	Framework__Django__5_2 = register("Framework :: Django :: 5.2")
	// Framework :: Django CMS
	Framework__DjangoCMS = register("Framework :: Django CMS")
	// Framework :: Django CMS :: 3.4
	Framework__DjangoCMS__3_4 = register("Framework :: Django CMS :: 3.4")
	// Framework :: Django CMS :: 3.5
	Framework__DjangoCMS__3_5 = register("Framework :: Django CMS :: 3.5")
	// Framework :: Django CMS :: 3.6
	Framework__DjangoCMS__3_6 = register("Framework :: Django CMS :: 3.6")
	// Framework :: Django CMS :: 3.7
	Framework__DjangoCMS__3_7 = register("Framework :: Django CMS :: 3.7")
	// Framework :: Django CMS :: 3.8
	Framework__DjangoCMS__3_8 = register("Framework :: Django CMS :: 3.8")
	// Framework :: Django CMS :: 3.9
	Framework__DjangoCMS__3_9 = register("Framework :: Django CMS :: 3.9")
	// Framework :: Django CMS :: 3.10
	Framework__DjangoCMS__3_10 = register("Framework :: Django CMS :: 3.10")
	// Framework :: Django CMS :: 3.11
	Framework__DjangoCMS__3_11 = register("Framework :: Django CMS :: 3.11")
	// Framework :: Django CMS :: 4.0
	Framework__DjangoCMS__4_0 = register("Framework :: Django CMS :: 4.0")
	// Framework :: Django CMS :: 4.1
	Framework__DjangoCMS__4_1 = register("Framework :: Django CMS :: 4.1")
	// Framework :: FastAPI
	Framework__FastAPI = register("Framework :: FastAPI")
	// Framework :: Flake8
	Framework__Flake8 = register("Framework :: Flake8")
	// Framework :: Flask
	Framework__Flask = register("Framework :: Flask")
	// Framework :: Hatch
	Framework__Hatch = register("Framework :: Hatch")
	// Framework :: Hypothesis
	Framework__Hypothesis = register("Framework :: Hypothesis")
	// Framework :: IDLE
	Framework__IDLE = register("Framework :: IDLE")
	// Framework :: IPython
	Framework__IPython = register("Framework :: IPython")
	// Framework :: Jupyter
	Framework__Jupyter = register("Framework :: Jupyter")
	// Framework :: Jupyter :: JupyterLab
	Framework__Jupyter__JupyterLab = register("Framework :: Jupyter :: JupyterLab")
	// Framework :: Jupyter :: JupyterLab :: 1
	Framework__Jupyter__JupyterLab__1 = register("Framework :: Jupyter :: JupyterLab :: 1")
	// Framework :: Jupyter :: JupyterLab :: 2
	Framework__Jupyter__JupyterLab__2 = register("Framework :: Jupyter :: JupyterLab :: 2")
	// Framework :: Jupyter :: JupyterLab :: 3
	Framework__Jupyter__JupyterLab__3 = register("Framework :: Jupyter :: JupyterLab :: 3")
	// Framework :: Jupyter :: JupyterLab :: 4
	Framework__Jupyter__JupyterLab__4 = register("Framework :: Jupyter :: JupyterLab :: 4")
	// Framework :: Jupyter :: JupyterLab :: Extensions
	Framework__Jupyter__JupyterLab__Extensions = register("Framework :: Jupyter :: JupyterLab :: Extensions")
	// Framework :: Jupyter :: JupyterLab :: Extensions :: Mime Renderers
	Framework__Jupyter__JupyterLab__Extensions__MimeRenderers = register("Framework :: Jupyter :: JupyterLab :: Extensions :: Mime Renderers")
	// Framework :: Jupyter :: JupyterLab :: Extensions :: Prebuilt
	Framework__Jupyter__JupyterLab__Extensions__Prebuilt = register("Framework :: Jupyter :: JupyterLab :: Extensions :: Prebuilt")
	// Framework :: Jupyter :: JupyterLab :: Extensions :: Themes
	Framework__Jupyter__JupyterLab__Extensions__Themes = register("Framework :: Jupyter :: JupyterLab :: Extensions :: Themes")
	// Framework :: Kedro
	Framework__Kedro = register("Framework :: Kedro")
	// Framework :: Lektor
	Framework__Lektor = register("Framework :: Lektor")
	// Framework :: Masonite
	Framework__Masonite = register("Framework :: Masonite")
	// Framework :: Matplotlib
	Framework__Matplotlib = register("Framework :: Matplotlib")
	// Framework :: MkDocs
	Framework__MkDocs = register("Framework :: MkDocs")
	// Framework :: Nengo
	Framework__Nengo = register("Framework :: Nengo")
	// Framework :: Odoo
	Framework__Odoo = register("Framework :: Odoo")
	// Framework :: Odoo :: 8.0
	Framework__Odoo__8_0 = register("Framework :: Odoo :: 8.0")
	// Framework :: Odoo :: 9.0
	Framework__Odoo__9_0 = register("Framework :: Odoo :: 9.0")
	// Framework :: Odoo :: 10.0
	Framework__Odoo__10_0 = register("Framework :: Odoo :: 10.0")
	// Framework :: Odoo :: 11.0
	Framework__Odoo__11_0 = register("Framework :: Odoo :: 11.0")
	// Framework :: Odoo :: 12.0
	Framework__Odoo__12_0 = register("Framework :: Odoo :: 12.0")
	// Framework :: Odoo :: 13.0
	Framework__Odoo__13_0 = register("Framework :: Odoo :: 13.0")
	// Framework :: Odoo :: 14.0
	Framework__Odoo__14_0 = register("Framework :: Odoo :: 14.0")
	// Framework :: Odoo :: 15.0
	Framework__Odoo__15_0 = register("Framework :: Odoo :: 15.0")
	// Framework :: Odoo :: 16.0
	Framework__Odoo__16_0 = register("Framework :: Odoo :: 16.0")
	// Framework :: Odoo :: 17.0
	Framework__Odoo__17_0 = register("Framework :: Odoo :: 17.0")
	// Framework :: Odoo :: 18.0
	Framework__Odoo__18_0 = register("Framework :: Odoo :: 18.0")
	// Framework :: OpenTelemetry
	Framework__OpenTelemetry = register("Framework :: OpenTelemetry")
	// Framework :: OpenTelemetry :: Distros
	Framework__OpenTelemetry__Distros = register("Framework :: OpenTelemetry :: Distros")
	// Framework :: OpenTelemetry :: Exporters
	Framework__OpenTelemetry__Exporters = register("Framework :: OpenTelemetry :: Exporters")
	// Framework :: OpenTelemetry :: Instrumentations
	Framework__OpenTelemetry__Instrumentations = register("Framework :: OpenTelemetry :: Instrumentations")
	// Framework :: Opps
	Framework__Opps = register("Framework :: Opps")
	// Framework :: Paste
	Framework__Paste = register("Framework :: Paste")
	// Framework :: Pelican
	Framework__Pelican = register("Framework :: Pelican")
	// Framework :: Pelican :: Plugins
	Framework__Pelican__Plugins = register("Framework :: Pelican :: Plugins")
	// Framework :: Pelican :: Themes
	Framework__Pelican__Themes = register("Framework :: Pelican :: Themes")
	// Framework :: Plone
	Framework__Plone = register("Framework :: Plone")
	// Framework :: Plone :: 3.2
	Framework__Plone__3_2 = register("Framework :: Plone :: 3.2")
	// Framework :: Plone :: 3.3
	Framework__Plone__3_3 = register("Framework :: Plone :: 3.3")
	// Framework :: Plone :: 4.0
	Framework__Plone__4_0 = register("Framework :: Plone :: 4.0")
	// Framework :: Plone :: 4.1
	Framework__Plone__4_1 = register("Framework :: Plone :: 4.1")
	// Framework :: Plone :: 4.2
	Framework__Plone__4_2 = register("Framework :: Plone :: 4.2")
	// Framework :: Plone :: 4.3
	Framework__Plone__4_3 = register("Framework :: Plone :: 4.3")
	// Framework :: Plone :: 5.0
	Framework__Plone__5_0 = register("Framework :: Plone :: 5.0")
	// Framework :: Plone :: 5.1
	Framework__Plone__5_1 = register("Framework :: Plone :: 5.1")
	// Framework :: Plone :: 5.2
	Framework__Plone__5_2 = register("Framework :: Plone :: 5.2")
	// Framework :: Plone :: 5.3
	Framework__Plone__5_3 = register("Framework :: Plone :: 5.3")
	// Framework :: Plone :: 6.0
	Framework__Plone__6_0 = register("Framework :: Plone :: 6.0")
	// Framework :: Plone :: 6.1
	Framework__Plone__6_1 = register("Framework :: Plone :: 6.1")
	// Framework :: Plone :: Addon
	Framework__Plone__Addon = register("Framework :: Plone :: Addon")
	// Framework :: Plone :: Core
	Framework__Plone__Core = register("Framework :: Plone :: Core")
	// Framework :: Plone :: Distribution
	Framework__Plone__Distribution = register("Framework :: Plone :: Distribution")
	// Framework :: Plone :: Theme
	Framework__Plone__Theme = register("Framework :: Plone :: Theme")
	// Framework :: PySimpleGUI
	Framework__PySimpleGUI = register("Framework :: PySimpleGUI")
	// Framework :: PySimpleGUI :: 4
	Framework__PySimpleGUI__4 = register("Framework :: PySimpleGUI :: 4")
	// Framework :: PySimpleGUI :: 5
	Framework__PySimpleGUI__5 = register("Framework :: PySimpleGUI :: 5")
	// Framework :: Pycsou
	Framework__Pycsou = register("Framework :: Pycsou")
	// Framework :: Pydantic
	Framework__Pydantic = register("Framework :: Pydantic")
	// Framework :: Pydantic :: 1
	Framework__Pydantic__1 = register("Framework :: Pydantic :: 1")
	// Framework :: Pydantic :: 2
	Framework__Pydantic__2 = register("Framework :: Pydantic :: 2")
	// Framework :: Pylons
	Framework__Pylons = register("Framework :: Pylons")
	// Framework :: Pyramid
	Framework__Pyramid = register("Framework :: Pyramid")
	// Framework :: Pytest
	Framework__Pytest = register("Framework :: Pytest")
	// Framework :: Review Board
	Framework__ReviewBoard = register("Framework :: Review Board")
	// Framework :: Robot Framework
	Framework__RobotFramework = register("Framework :: Robot Framework")
	// Framework :: Robot Framework :: Library
	Framework__RobotFramework__Library = register("Framework :: Robot Framework :: Library")
	// Framework :: Robot Framework :: Tool
	Framework__RobotFramework__Tool = register("Framework :: Robot Framework :: Tool")
	// Framework :: Scrapy
	Framework__Scrapy = register("Framework :: Scrapy")
	// Framework :: Setuptools Plugin
	Framework__SetuptoolsPlugin = register("Framework :: Setuptools Plugin")
	// Framework :: Sphinx
	Framework__Sphinx = register("Framework :: Sphinx")
	// Framework :: Sphinx :: Domain
	Framework__Sphinx__Domain = register("Framework :: Sphinx :: Domain")
	// Framework :: Sphinx :: Extension
	Framework__Sphinx__Extension = register("Framework :: Sphinx :: Extension")
	// Framework :: Sphinx :: Theme
	Framework__Sphinx__Theme = register("Framework :: Sphinx :: Theme")
	// Framework :: Trac
	Framework__Trac = register("Framework :: Trac")
	// Framework :: Trio
	Framework__Trio = register("Framework :: Trio")
	// Framework :: Tryton
	Framework__Tryton = register("Framework :: Tryton")
	// Framework :: TurboGears
	Framework__TurboGears = register("Framework :: TurboGears")
	// Framework :: TurboGears :: Applications
	Framework__TurboGears__Applications = register("Framework :: TurboGears :: Applications")
	// Framework :: TurboGears :: Widgets
	Framework__TurboGears__Widgets = register("Framework :: TurboGears :: Widgets")
	// Framework :: Twisted
	Framework__Twisted = register("Framework :: Twisted")
	// Framework :: Wagtail
	Framework__Wagtail = register("Framework :: Wagtail")
	// Framework :: Wagtail :: 1
	Framework__Wagtail__1 = register("Framework :: Wagtail :: 1")
	// Framework :: Wagtail :: 2
	Framework__Wagtail__2 = register("Framework :: Wagtail :: 2")
	// Framework :: Wagtail :: 3
	Framework__Wagtail__3 = register("Framework :: Wagtail :: 3")
	// Framework :: Wagtail :: 4
	Framework__Wagtail__4 = register("Framework :: Wagtail :: 4")
	// Framework :: Wagtail :: 5
	Framework__Wagtail__5 = register("Framework :: Wagtail :: 5")
	// Framework :: Wagtail :: 6
	Framework__Wagtail__6 = register("Framework :: Wagtail :: 6")
	// Framework :: ZODB
	Framework__ZODB = register("Framework :: ZODB")
	// Framework :: Zope
	Framework__Zope = register("Framework :: Zope")
	// Framework :: Zope2
	Framework__Zope2 = register("Framework :: Zope2")
	// Framework :: Zope3
	Framework__Zope3 = register("Framework :: Zope3")
	// Framework :: Zope :: 2
	Framework__Zope__2 = register("Framework :: Zope :: 2")
	// Framework :: Zope :: 3
	Framework__Zope__3 = register("Framework :: Zope :: 3")
	// Framework :: Zope :: 4
	Framework__Zope__4 = register("Framework :: Zope :: 4")
	// Framework :: Zope :: 5
	Framework__Zope__5 = register("Framework :: Zope :: 5")
	// Framework :: aiohttp
	Framework__aiohttp = register("Framework :: aiohttp")
	// Framework :: cocotb
	Framework__cocotb = register("Framework :: cocotb")
	// Framework :: napari
	Framework__napari = register("Framework :: napari")
	// Framework :: tox
	Framework__tox = register("Framework :: tox")
	// Intended Audience :: Customer Service
	IntendedAudience__CustomerService = register("Intended Audience :: Customer Service")
	// Intended Audience :: Developers
	IntendedAudience__Developers = register("Intended Audience :: Developers")
	// Intended Audience :: Education
	IntendedAudience__Education = register("Intended Audience :: Education")
	// Intended Audience :: End Users/Desktop
	IntendedAudience__EndUsersDesktop = register("Intended Audience :: End Users/Desktop")
	// Intended Audience :: Financial and Insurance Industry
	IntendedAudience__FinancialandInsuranceIndustry = register("Intended Audience :: Financial and Insurance Industry")
	// Intended Audience :: Healthcare Industry
	IntendedAudience__HealthcareIndustry = register("Intended Audience :: Healthcare Industry")
	// Intended Audience :: Information Technology
	IntendedAudience__InformationTechnology = register("Intended Audience :: Information Technology")
	// Intended Audience :: Legal Industry
	IntendedAudience__LegalIndustry = register("Intended Audience :: Legal Industry")
	// Intended Audience :: Manufacturing
	IntendedAudience__Manufacturing = register("Intended Audience :: Manufacturing")
	// Intended Audience :: Other Audience
	IntendedAudience__OtherAudience = register("Intended Audience :: Other Audience")
	// Intended Audience :: Religion
	IntendedAudience__Religion = register("Intended Audience :: Religion")
	// Intended Audience :: Science/Research
	IntendedAudience__ScienceResearch = register("Intended Audience :: Science/Research")
	// Intended Audience :: System Administrators
	IntendedAudience__SystemAdministrators = register("Intended Audience :: System Administrators")
	// Intended Audience :: Telecommunications Industry
	IntendedAudience__TelecommunicationsIndustry = register("Intended Audience :: Telecommunications Industry")
	// License :: Aladdin Free Public License (AFPL)
	License__AladdinFreePublicLicenseAFPL = register("License :: Aladdin Free Public License (AFPL)")
	// License :: CC0 1.0 Universal (CC0 1.0) Public Domain Dedication
	License__CC01_0UniversalCC01_0PublicDomainDedication = register("License :: CC0 1.0 Universal (CC0 1.0) Public Domain Dedication")
	// License :: CeCILL-B Free Software License Agreement (CECILL-B)
	License__CeCILLBFreeSoftwareLicenseAgreementCECILLB = register("License :: CeCILL-B Free Software License Agreement (CECILL-B)")
	// License :: CeCILL-C Free Software License Agreement (CECILL-C)
	License__CeCILLCFreeSoftwareLicenseAgreementCECILLC = register("License :: CeCILL-C Free Software License Agreement (CECILL-C)")
	// License :: DFSG approved
	License__DFSGapproved = register("License :: DFSG approved")
	// License :: Eiffel Forum License (EFL)
	License__EiffelForumLicenseEFL = register("License :: Eiffel Forum License (EFL)")
	// License :: Free For Educational Use
	License__FreeForEducationalUse = register("License :: Free For Educational Use")
	// License :: Free For Home Use
	License__FreeForHomeUse = register("License :: Free For Home Use")
	// License :: Free To Use But Restricted
	License__FreeToUseButRestricted = register("License :: Free To Use But Restricted")
	// License :: Free for non-commercial use
	License__Freefornoncommercialuse = register("License :: Free for non-commercial use")
	// License :: Freely Distributable
	License__FreelyDistributable = register("License :: Freely Distributable")
	// License :: Freeware
	License__Freeware = register("License :: Freeware")
	// License :: GUST Font License 1.0
	License__GUSTFontLicense1_0 = register("License :: GUST Font License 1.0")
	// License :: GUST Font License 2006-09-30
	License__GUSTFontLicense20060930 = register("License :: GUST Font License 2006-09-30")
	// License :: Netscape Public License (NPL)
	License__NetscapePublicLicenseNPL = register("License :: Netscape Public License (NPL)")
	// License :: Nokia Open Source License (NOKOS)
	License__NokiaOpenSourceLicenseNOKOS = register("License :: Nokia Open Source License (NOKOS)")
	// License :: OSI Approved
	License__OSIApproved = register("License :: OSI Approved")
	// License :: OSI Approved :: Academic Free License (AFL)
	License__OSIApproved__AcademicFreeLicenseAFL = register("License :: OSI Approved :: Academic Free License (AFL)")
	// License :: OSI Approved :: Apache Software License
	License__OSIApproved__ApacheSoftwareLicense = register("License :: OSI Approved :: Apache Software License")
	// License :: OSI Approved :: Apple Public Source License
	License__OSIApproved__ApplePublicSourceLicense = register("License :: OSI Approved :: Apple Public Source License")
	// License :: OSI Approved :: Artistic License
	License__OSIApproved__ArtisticLicense = register("License :: OSI Approved :: Artistic License")
	// License :: OSI Approved :: Attribution Assurance License
	License__OSIApproved__AttributionAssuranceLicense = register("License :: OSI Approved :: Attribution Assurance License")
	// License :: OSI Approved :: BSD License
	License__OSIApproved__BSDLicense = register("License :: OSI Approved :: BSD License")
	// License :: OSI Approved :: Blue Oak Model License (BlueOak-1.0.0)
	License__OSIApproved__BlueOakModelLicenseBlueOak1_0_0 = register("License :: OSI Approved :: Blue Oak Model License (BlueOak-1.0.0)")
	// License :: OSI Approved :: Boost Software License 1.0 (BSL-1.0)
	License__OSIApproved__BoostSoftwareLicense1_0BSL1_0 = register("License :: OSI Approved :: Boost Software License 1.0 (BSL-1.0)")
	// License :: OSI Approved :: CMU License (MIT-CMU)
	License__OSIApproved__CMULicenseMITCMU = register("License :: OSI Approved :: CMU License (MIT-CMU)")
	// License :: OSI Approved :: Common Public License
	License__OSIApproved__CommonPublicLicense = register("License :: OSI Approved :: Common Public License")
	// License :: OSI Approved :: Eclipse Public License 1.0 (EPL-1.0)
	License__OSIApproved__EclipsePublicLicense1_0EPL1_0 = register("License :: OSI Approved :: Eclipse Public License 1.0 (EPL-1.0)")
	// License :: OSI Approved :: Eclipse Public License 2.0 (EPL-2.0)
	License__OSIApproved__EclipsePublicLicense2_0EPL2_0 = register("License :: OSI Approved :: Eclipse Public License 2.0 (EPL-2.0)")
	// License :: OSI Approved :: Eiffel Forum License
	License__OSIApproved__EiffelForumLicense = register("License :: OSI Approved :: Eiffel Forum License")
	// License :: OSI Approved :: European Union Public Licence 1.0 (EUPL 1.0)
	License__OSIApproved__EuropeanUnionPublicLicence1_0EUPL1_0 = register("License :: OSI Approved :: European Union Public Licence 1.0 (EUPL 1.0)")
	// License :: OSI Approved :: European Union Public Licence 1.1 (EUPL 1.1)
	License__OSIApproved__EuropeanUnionPublicLicence1_1EUPL1_1 = register("License :: OSI Approved :: European Union Public Licence 1.1 (EUPL 1.1)")
	// License :: OSI Approved :: European Union Public Licence 1.2 (EUPL 1.2)
	License__OSIApproved__EuropeanUnionPublicLicence1_2EUPL1_2 = register("License :: OSI Approved :: European Union Public Licence 1.2 (EUPL 1.2)")
	// License :: OSI Approved :: GNU Affero General Public License v3
	License__OSIApproved__GNUAfferoGeneralPublicLicensev3 = register("License :: OSI Approved :: GNU Affero General Public License v3")
	// License :: OSI Approved :: GNU Free Documentation License (FDL)
	License__OSIApproved__GNUFreeDocumentationLicenseFDL = register("License :: OSI Approved :: GNU Free Documentation License (FDL)")
	// License :: OSI Approved :: GNU General Public License (GPL)
	License__OSIApproved__GNUGeneralPublicLicenseGPL = register("License :: OSI Approved :: GNU General Public License (GPL)")
	// License :: OSI Approved :: GNU General Public License v2 (GPLv2)
	License__OSIApproved__GNUGeneralPublicLicensev2GPLv2 = register("License :: OSI Approved :: GNU General Public License v2 (GPLv2)")
	// License :: OSI Approved :: GNU General Public License v3 (GPLv3)
	License__OSIApproved__GNUGeneralPublicLicensev3GPLv3 = register("License :: OSI Approved :: GNU General Public License v3 (GPLv3)")
	// License :: OSI Approved :: IBM Public License
	License__OSIApproved__IBMPublicLicense = register("License :: OSI Approved :: IBM Public License")
	// License :: OSI Approved :: ISC License (ISCL)
	License__OSIApproved__ISCLicenseISCL = register("License :: OSI Approved :: ISC License (ISCL)")
	// License :: OSI Approved :: Intel Open Source License
	License__OSIApproved__IntelOpenSourceLicense = register("License :: OSI Approved :: Intel Open Source License")
	// License :: OSI Approved :: Jabber Open Source License
	License__OSIApproved__JabberOpenSourceLicense = register("License :: OSI Approved :: Jabber Open Source License")
	// License :: OSI Approved :: MIT License
	License__OSIApproved__MITLicense = register("License :: OSI Approved :: MIT License")
	// License :: OSI Approved :: MIT No Attribution License (MIT-0)
	License__OSIApproved__MITNoAttributionLicenseMIT0 = register("License :: OSI Approved :: MIT No Attribution License (MIT-0)")
	// License :: OSI Approved :: MirOS License (MirOS)
	License__OSIApproved__MirOSLicenseMirOS = register("License :: OSI Approved :: MirOS License (MirOS)")
	// License :: OSI Approved :: Motosoto License
	License__OSIApproved__MotosotoLicense = register("License :: OSI Approved :: Motosoto License")
	// License :: OSI Approved :: Mozilla Public License 1.0 (MPL)
	License__OSIApproved__MozillaPublicLicense1_0MPL = register("License :: OSI Approved :: Mozilla Public License 1.0 (MPL)")
	// License :: OSI Approved :: Mozilla Public License 1.1 (MPL 1.1)
	License__OSIApproved__MozillaPublicLicense1_1MPL1_1 = register("License :: OSI Approved :: Mozilla Public License 1.1 (MPL 1.1)")
	// License :: OSI Approved :: Mozilla Public License 2.0 (MPL 2.0)
	License__OSIApproved__MozillaPublicLicense2_0MPL2_0 = register("License :: OSI Approved :: Mozilla Public License 2.0 (MPL 2.0)")
	// License :: OSI Approved :: NASA Open Source Agreement v1.3 (NASA-1.3)
	License__OSIApproved__NASAOpenSourceAgreementv1_3NASA1_3 = register("License :: OSI Approved :: NASA Open Source Agreement v1.3 (NASA-1.3)")
	// License :: OSI Approved :: Nethack General Public License
	License__OSIApproved__NethackGeneralPublicLicense = register("License :: OSI Approved :: Nethack General Public License")
	// License :: OSI Approved :: Nokia Open Source License
	License__OSIApproved__NokiaOpenSourceLicense = register("License :: OSI Approved :: Nokia Open Source License")
	// License :: OSI Approved :: Open Group Test Suite License
	License__OSIApproved__OpenGroupTestSuiteLicense = register("License :: OSI Approved :: Open Group Test Suite License")
	// License :: OSI Approved :: Open Software License 3.0 (OSL-3.0)
	License__OSIApproved__OpenSoftwareLicense3_0OSL3_0 = register("License :: OSI Approved :: Open Software License 3.0 (OSL-3.0)")
	// License :: OSI Approved :: PostgreSQL License
	License__OSIApproved__PostgreSQLLicense = register("License :: OSI Approved :: PostgreSQL License")
	// License :: OSI Approved :: Python License (CNRI Python License)
	License__OSIApproved__PythonLicenseCNRIPythonLicense = register("License :: OSI Approved :: Python License (CNRI Python License)")
	// License :: OSI Approved :: Python Software Foundation License
	License__OSIApproved__PythonSoftwareFoundationLicense = register("License :: OSI Approved :: Python Software Foundation License")
	// License :: OSI Approved :: Qt Public License (QPL)
	License__OSIApproved__QtPublicLicenseQPL = register("License :: OSI Approved :: Qt Public License (QPL)")
	// License :: OSI Approved :: Ricoh Source Code Public License
	License__OSIApproved__RicohSourceCodePublicLicense = register("License :: OSI Approved :: Ricoh Source Code Public License")
	// License :: OSI Approved :: SIL Open Font License 1.1 (OFL-1.1)
	License__OSIApproved__SILOpenFontLicense1_1OFL1_1 = register("License :: OSI Approved :: SIL Open Font License 1.1 (OFL-1.1)")
	// License :: OSI Approved :: Sleepycat License
	License__OSIApproved__SleepycatLicense = register("License :: OSI Approved :: Sleepycat License")
	// License :: OSI Approved :: Sun Public License
	License__OSIApproved__SunPublicLicense = register("License :: OSI Approved :: Sun Public License")
	// License :: OSI Approved :: The Unlicense (Unlicense)
	License__OSIApproved__TheUnlicenseUnlicense = register("License :: OSI Approved :: The Unlicense (Unlicense)")
	// License :: OSI Approved :: Universal Permissive License (UPL)
	License__OSIApproved__UniversalPermissiveLicenseUPL = register("License :: OSI Approved :: Universal Permissive License (UPL)")
	// License :: OSI Approved :: Vovida Software License 1.0
	License__OSIApproved__VovidaSoftwareLicense1_0 = register("License :: OSI Approved :: Vovida Software License 1.0")
	// License :: OSI Approved :: W3C License
	License__OSIApproved__W3CLicense = register("License :: OSI Approved :: W3C License")
	// License :: OSI Approved :: X.Net License
	License__OSIApproved__X_NetLicense = register("License :: OSI Approved :: X.Net License")
	// License :: OSI Approved :: Zero-Clause BSD (0BSD)
	License__OSIApproved__ZeroClauseBSD0BSD = register("License :: OSI Approved :: Zero-Clause BSD (0BSD)")
	// License :: OSI Approved :: Zope Public License
	License__OSIApproved__ZopePublicLicense = register("License :: OSI Approved :: Zope Public License")
	// License :: OSI Approved :: zlib/libpng License
	License__OSIApproved__zliblibpngLicense = register("License :: OSI Approved :: zlib/libpng License")
	// License :: Other/Proprietary License
	License__OtherProprietaryLicense = register("License :: Other/Proprietary License")
	// License :: Public Domain
	License__PublicDomain = register("License :: Public Domain")
	// License :: Repoze Public License
	License__RepozePublicLicense = register("License :: Repoze Public License")
	// Natural Language :: Afrikaans
	NaturalLanguage__Afrikaans = register("Natural Language :: Afrikaans")
	// Natural Language :: Arabic
	NaturalLanguage__Arabic = register("Natural Language :: Arabic")
	// Natural Language :: Basque
	NaturalLanguage__Basque = register("Natural Language :: Basque")
	// Natural Language :: Bengali
	NaturalLanguage__Bengali = register("Natural Language :: Bengali")
	// Natural Language :: Bosnian
	NaturalLanguage__Bosnian = register("Natural Language :: Bosnian")
	// Natural Language :: Bulgarian
	NaturalLanguage__Bulgarian = register("Natural Language :: Bulgarian")
	// Natural Language :: Cantonese
	NaturalLanguage__Cantonese = register("Natural Language :: Cantonese")
	// Natural Language :: Catalan
	NaturalLanguage__Catalan = register("Natural Language :: Catalan")
	// Natural Language :: Catalan (Valencian)
	NaturalLanguage__CatalanValencian = register("Natural Language :: Catalan (Valencian)")
	// Natural Language :: Chinese (Simplified)
	NaturalLanguage__ChineseSimplified = register("Natural Language :: Chinese (Simplified)")
	// Natural Language :: Chinese (Traditional)
	NaturalLanguage__ChineseTraditional = register("Natural Language :: Chinese (Traditional)")
	// Natural Language :: Croatian
	NaturalLanguage__Croatian = register("Natural Language :: Croatian")
	// Natural Language :: Czech
	NaturalLanguage__Czech = register("Natural Language :: Czech")
	// Natural Language :: Danish
	NaturalLanguage__Danish = register("Natural Language :: Danish")
	// Natural Language :: Dutch
	NaturalLanguage__Dutch = register("Natural Language :: Dutch")
	// Natural Language :: English
	NaturalLanguage__English = register("Natural Language :: English")
	// Natural Language :: Esperanto
	NaturalLanguage__Esperanto = register("Natural Language :: Esperanto")
	// Natural Language :: Finnish
	NaturalLanguage__Finnish = register("Natural Language :: Finnish")
	// Natural Language :: French
	NaturalLanguage__French = register("Natural Language :: French")
	// Natural Language :: Galician
	NaturalLanguage__Galician = register("Natural Language :: Galician")
	// Natural Language :: Georgian
	NaturalLanguage__Georgian = register("Natural Language :: Georgian")
	// Natural Language :: German
	NaturalLanguage__German = register("Natural Language :: German")
	// Natural Language :: Greek
	NaturalLanguage__Greek = register("Natural Language :: Greek")
	// Natural Language :: Hebrew
	NaturalLanguage__Hebrew = register("Natural Language :: Hebrew")
	// Natural Language :: Hindi
	NaturalLanguage__Hindi = register("Natural Language :: Hindi")
	// Natural Language :: Hungarian
	NaturalLanguage__Hungarian = register("Natural Language :: Hungarian")
	// Natural Language :: Icelandic
	NaturalLanguage__Icelandic = register("Natural Language :: Icelandic")
	// Natural Language :: Indonesian
	NaturalLanguage__Indonesian = register("Natural Language :: Indonesian")
	// Natural Language :: Irish
	NaturalLanguage__Irish = register("Natural Language :: Irish")
	// Natural Language :: Italian
	NaturalLanguage__Italian = register("Natural Language :: Italian")
	// Natural Language :: Japanese
	NaturalLanguage__Japanese = register("Natural Language :: Japanese")
	// Natural Language :: Javanese
	NaturalLanguage__Javanese = register("Natural Language :: Javanese")
	// Natural Language :: Korean
	NaturalLanguage__Korean = register("Natural Language :: Korean")
	// Natural Language :: Latin
	NaturalLanguage__Latin = register("Natural Language :: Latin")
	// Natural Language :: Latvian
	NaturalLanguage__Latvian = register("Natural Language :: Latvian")
	// Natural Language :: Lithuanian
	NaturalLanguage__Lithuanian = register("Natural Language :: Lithuanian")
	// Natural Language :: Macedonian
	NaturalLanguage__Macedonian = register("Natural Language :: Macedonian")
	// Natural Language :: Malay
	NaturalLanguage__Malay = register("Natural Language :: Malay")
	// Natural Language :: Marathi
	NaturalLanguage__Marathi = register("Natural Language :: Marathi")
	// Natural Language :: Nepali
	NaturalLanguage__Nepali = register("Natural Language :: Nepali")
	// Natural Language :: Norwegian
	NaturalLanguage__Norwegian = register("Natural Language :: Norwegian")
	// Natural Language :: Panjabi
	NaturalLanguage__Panjabi = register("Natural Language :: Panjabi")
	// Natural Language :: Persian
	NaturalLanguage__Persian = register("Natural Language :: Persian")
	// Natural Language :: Polish
	NaturalLanguage__Polish = register("Natural Language :: Polish")
	// Natural Language :: Portuguese
	NaturalLanguage__Portuguese = register("Natural Language :: Portuguese")
	// Natural Language :: Portuguese (Brazilian)
	NaturalLanguage__PortugueseBrazilian = register("Natural Language :: Portuguese (Brazilian)")
	// Natural Language :: Romanian
	NaturalLanguage__Romanian = register("Natural Language :: Romanian")
	// Natural Language :: Russian
	NaturalLanguage__Russian = register("Natural Language :: Russian")
	// Natural Language :: Serbian
	NaturalLanguage__Serbian = register("Natural Language :: Serbian")
	// Natural Language :: Slovak
	NaturalLanguage__Slovak = register("Natural Language :: Slovak")
	// Natural Language :: Slovenian
	NaturalLanguage__Slovenian = register("Natural Language :: Slovenian")
	// Natural Language :: Spanish
	NaturalLanguage__Spanish = register("Natural Language :: Spanish")
	// Natural Language :: Swedish
	NaturalLanguage__Swedish = register("Natural Language :: Swedish")
	// Natural Language :: Tamil
	NaturalLanguage__Tamil = register("Natural Language :: Tamil")
	// Natural Language :: Telugu
	NaturalLanguage__Telugu = register("Natural Language :: Telugu")
	// Natural Language :: Thai
	NaturalLanguage__Thai = register("Natural Language :: Thai")
	// Natural Language :: Tibetan
	NaturalLanguage__Tibetan = register("Natural Language :: Tibetan")
	// Natural Language :: Turkish
	NaturalLanguage__Turkish = register("Natural Language :: Turkish")
	// Natural Language :: Ukrainian
	NaturalLanguage__Ukrainian = register("Natural Language :: Ukrainian")
	// Natural Language :: Urdu
	NaturalLanguage__Urdu = register("Natural Language :: Urdu")
	// Natural Language :: Vietnamese
	NaturalLanguage__Vietnamese = register("Natural Language :: Vietnamese")
	// Operating System :: Android
	OperatingSystem__Android = register("Operating System :: Android")
	// Operating System :: BeOS
	OperatingSystem__BeOS = register("Operating System :: BeOS")
	// Operating System :: MacOS
	OperatingSystem__MacOS = register("Operating System :: MacOS")
	// Operating System :: MacOS :: MacOS 9
	OperatingSystem__MacOS__MacOS9 = register("Operating System :: MacOS :: MacOS 9")
	// Operating System :: MacOS :: MacOS X
	OperatingSystem__MacOS__MacOSX = register("Operating System :: MacOS :: MacOS X")
	// Operating System :: Microsoft
	OperatingSystem__Microsoft = register("Operating System :: Microsoft")
	// Operating System :: Microsoft :: MS-DOS
	OperatingSystem__Microsoft__MSDOS = register("Operating System :: Microsoft :: MS-DOS")
	// Operating System :: Microsoft :: Windows
	OperatingSystem__Microsoft__Windows = register("Operating System :: Microsoft :: Windows")
	// Operating System :: Microsoft :: Windows :: Windows 3.1 or Earlier
	OperatingSystem__Microsoft__Windows__Windows3_1orEarlier = register("Operating System :: Microsoft :: Windows :: Windows 3.1 or Earlier")
	// Operating System :: Microsoft :: Windows :: Windows 7
	OperatingSystem__Microsoft__Windows__Windows7 = register("Operating System :: Microsoft :: Windows :: Windows 7")
	// Operating System :: Microsoft :: Windows :: Windows 8
	OperatingSystem__Microsoft__Windows__Windows8 = register("Operating System :: Microsoft :: Windows :: Windows 8")
	// Operating System :: Microsoft :: Windows :: Windows 8.1
	OperatingSystem__Microsoft__Windows__Windows8_1 = register("Operating System :: Microsoft :: Windows :: Windows 8.1")
	// Operating System :: Microsoft :: Windows :: Windows 10
	OperatingSystem__Microsoft__Windows__Windows10 = register("Operating System :: Microsoft :: Windows :: Windows 10")
	// Operating System :: Microsoft :: Windows :: Windows 11
	OperatingSystem__Microsoft__Windows__Windows11 = register("Operating System :: Microsoft :: Windows :: Windows 11")
	// Operating System :: Microsoft :: Windows :: Windows 95/98/2000
	OperatingSystem__Microsoft__Windows__Windows95982000 = register("Operating System :: Microsoft :: Windows :: Windows 95/98/2000")
	// Operating System :: Microsoft :: Windows :: Windows CE
	OperatingSystem__Microsoft__Windows__WindowsCE = register("Operating System :: Microsoft :: Windows :: Windows CE")
	// Operating System :: Microsoft :: Windows :: Windows NT/2000
	OperatingSystem__Microsoft__Windows__WindowsNT2000 = register("Operating System :: Microsoft :: Windows :: Windows NT/2000")
	// Operating System :: Microsoft :: Windows :: Windows Server 2003
	OperatingSystem__Microsoft__Windows__WindowsServer2003 = register("Operating System :: Microsoft :: Windows :: Windows Server 2003")
	// Operating System :: Microsoft :: Windows :: Windows Server 2008
	OperatingSystem__Microsoft__Windows__WindowsServer2008 = register("Operating System :: Microsoft :: Windows :: Windows Server 2008")
	// Operating System :: Microsoft :: Windows :: Windows Vista
	OperatingSystem__Microsoft__Windows__WindowsVista = register("Operating System :: Microsoft :: Windows :: Windows Vista")
	// Operating System :: Microsoft :: Windows :: Windows XP
	OperatingSystem__Microsoft__Windows__WindowsXP = register("Operating System :: Microsoft :: Windows :: Windows XP")
	// Operating System :: OS Independent
	OperatingSystem__OSIndependent = register("Operating System :: OS Independent")
	// Operating System :: OS/2
	OperatingSystem__OS2 = register("Operating System :: OS/2")
	// Operating System :: Other OS
	OperatingSystem__OtherOS = register("Operating System :: Other OS")
	// Operating System :: PDA Systems
	OperatingSystem__PDASystems = register("Operating System :: PDA Systems")
	// Operating System :: POSIX
	OperatingSystem__POSIX = register("Operating System :: POSIX")
	// Operating System :: POSIX :: AIX
	OperatingSystem__POSIX__AIX = register("Operating System :: POSIX :: AIX")
	// Operating System :: POSIX :: BSD
	OperatingSystem__POSIX__BSD = register("Operating System :: POSIX :: BSD")
	// Operating System :: POSIX :: BSD :: BSD/OS
	OperatingSystem__POSIX__BSD__BSDOS = register("Operating System :: POSIX :: BSD :: BSD/OS")
	// Operating System :: POSIX :: BSD :: FreeBSD
	OperatingSystem__POSIX__BSD__FreeBSD = register("Operating System :: POSIX :: BSD :: FreeBSD")
	// Operating System :: POSIX :: BSD :: NetBSD
	OperatingSystem__POSIX__BSD__NetBSD = register("Operating System :: POSIX :: BSD :: NetBSD")
	// Operating System :: POSIX :: BSD :: OpenBSD
	OperatingSystem__POSIX__BSD__OpenBSD = register("Operating System :: POSIX :: BSD :: OpenBSD")
	// Operating System :: POSIX :: GNU Hurd
	OperatingSystem__POSIX__GNUHurd = register("Operating System :: POSIX :: GNU Hurd")
	// Operating System :: POSIX :: HP-UX
	OperatingSystem__POSIX__HPUX = register("Operating System :: POSIX :: HP-UX")
	// Operating System :: POSIX :: IRIX
	OperatingSystem__POSIX__IRIX = register("Operating System :: POSIX :: IRIX")
	// Operating System :: POSIX :: Linux
	OperatingSystem__POSIX__Linux = register("Operating System :: POSIX :: Linux")
	// Operating System :: POSIX :: Other
	OperatingSystem__POSIX__Other = register("Operating System :: POSIX :: Other")
	// Operating System :: POSIX :: SCO
	OperatingSystem__POSIX__SCO = register("Operating System :: POSIX :: SCO")
	// Operating System :: POSIX :: SunOS/Solaris
	OperatingSystem__POSIX__SunOSSolaris = register("Operating System :: POSIX :: SunOS/Solaris")
	// Operating System :: PalmOS
	OperatingSystem__PalmOS = register("Operating System :: PalmOS")
	// Operating System :: RISC OS
	OperatingSystem__RISCOS = register("Operating System :: RISC OS")
	// Operating System :: Unix
	OperatingSystem__Unix = register("Operating System :: Unix")
	// Operating System :: iOS
	OperatingSystem__iOS = register("Operating System :: iOS")
	// Programming Language :: APL
	ProgrammingLanguage__APL = register("Programming Language :: APL")
	// Programming Language :: ASP
	ProgrammingLanguage__ASP = register("Programming Language :: ASP")
	// Programming Language :: Ada
	ProgrammingLanguage__Ada = register("Programming Language :: Ada")
	// Programming Language :: Assembly
	ProgrammingLanguage__Assembly = register("Programming Language :: Assembly")
	// Programming Language :: Awk
	ProgrammingLanguage__Awk = register("Programming Language :: Awk")
	// Programming Language :: Basic
	ProgrammingLanguage__Basic = register("Programming Language :: Basic")
	// Programming Language :: C
	ProgrammingLanguage__C = register("Programming Language :: C")
	// Programming Language :: C#
	ProgrammingLanguage__Csharp = register("Programming Language :: C#")
	// Programming Language :: C++
	ProgrammingLanguage__Cplusplus = register("Programming Language :: C++")
	// Programming Language :: Cold Fusion
	ProgrammingLanguage__ColdFusion = register("Programming Language :: Cold Fusion")
	// Programming Language :: Cython
	ProgrammingLanguage__Cython = register("Programming Language :: Cython")
	// Programming Language :: D
	ProgrammingLanguage__D = register("Programming Language :: D")
	// Programming Language :: Delphi/Kylix
	ProgrammingLanguage__DelphiKylix = register("Programming Language :: Delphi/Kylix")
	// Programming Language :: Dylan
	ProgrammingLanguage__Dylan = register("Programming Language :: Dylan")
	// Programming Language :: Eiffel
	ProgrammingLanguage__Eiffel = register("Programming Language :: Eiffel")
	// Programming Language :: Emacs-Lisp
	ProgrammingLanguage__EmacsLisp = register("Programming Language :: Emacs-Lisp")
	// Programming Language :: Erlang
	ProgrammingLanguage__Erlang = register("Programming Language :: Erlang")
	// Programming Language :: Euler
	ProgrammingLanguage__Euler = register("Programming Language :: Euler")
	// Programming Language :: Euphoria
	ProgrammingLanguage__Euphoria = register("Programming Language :: Euphoria")
	// Programming Language :: F#
	ProgrammingLanguage__Fsharp = register("Programming Language :: F#")
	// Programming Language :: Forth
	ProgrammingLanguage__Forth = register("Programming Language :: Forth")
	// Programming Language :: Fortran
	ProgrammingLanguage__Fortran = register("Programming Language :: Fortran")
	// Programming Language :: Go
	ProgrammingLanguage__Go = register("Programming Language :: Go")
	// Programming Language :: Haskell
	ProgrammingLanguage__Haskell = register("Programming Language :: Haskell")
	// Programming Language :: Hy
	ProgrammingLanguage__Hy = register("Programming Language :: Hy")
	// Programming Language :: Java
	ProgrammingLanguage__Java = register("Programming Language :: Java")
	// Programming Language :: JavaScript
	ProgrammingLanguage__JavaScript = register("Programming Language :: JavaScript")
	// Programming Language :: Kotlin
	ProgrammingLanguage__Kotlin = register("Programming Language :: Kotlin")
	// Programming Language :: Lisp
	ProgrammingLanguage__Lisp = register("Programming Language :: Lisp")
	// Programming Language :: Logo
	ProgrammingLanguage__Logo = register("Programming Language :: Logo")
	// Programming Language :: Lua
	ProgrammingLanguage__Lua = register("Programming Language :: Lua")
	// Programming Language :: ML
	ProgrammingLanguage__ML = register("Programming Language :: ML")
	// Programming Language :: Modula
	ProgrammingLanguage__Modula = register("Programming Language :: Modula")
	// Programming Language :: OCaml
	ProgrammingLanguage__OCaml = register("Programming Language :: OCaml")
	// Programming Language :: Object Pascal
	ProgrammingLanguage__ObjectPascal = register("Programming Language :: Object Pascal")
	// Programming Language :: Objective C
	ProgrammingLanguage__ObjectiveC = register("Programming Language :: Objective C")
	// Programming Language :: Other
	ProgrammingLanguage__Other = register("Programming Language :: Other")
	// Programming Language :: Other Scripting Engines
	ProgrammingLanguage__OtherScriptingEngines = register("Programming Language :: Other Scripting Engines")
	// Programming Language :: PHP
	ProgrammingLanguage__PHP = register("Programming Language :: PHP")
	// Programming Language :: PL/SQL
	ProgrammingLanguage__PLSQL = register("Programming Language :: PL/SQL")
	// Programming Language :: PROGRESS
	ProgrammingLanguage__PROGRESS = register("Programming Language :: PROGRESS")
	// Programming Language :: Pascal
	ProgrammingLanguage__Pascal = register("Programming Language :: Pascal")
	// Programming Language :: Perl
	ProgrammingLanguage__Perl = register("Programming Language :: Perl")
	// Programming Language :: Pike
	ProgrammingLanguage__Pike = register("Programming Language :: Pike")
	// Programming Language :: Pliant
	ProgrammingLanguage__Pliant = register("Programming Language :: Pliant")
	// Programming Language :: Prolog
	ProgrammingLanguage__Prolog = register("Programming Language :: Prolog")
	// Programming Language :: Python
	ProgrammingLanguage__Python = register("Programming Language :: Python")
	// Programming Language :: Python :: 2
	ProgrammingLanguage__Python__2 = register("Programming Language :: Python :: 2")
	// Programming Language :: Python :: 2 :: Only
	ProgrammingLanguage__Python__2__Only = register("Programming Language :: Python :: 2 :: Only")
	// Programming Language :: Python :: 2.3
	ProgrammingLanguage__Python__2_3 = register("Programming Language :: Python :: 2.3")
	// Programming Language :: Python :: 2.4
	ProgrammingLanguage__Python__2_4 = register("Programming Language :: Python :: 2.4")
	// Programming Language :: Python :: 2.5
	ProgrammingLanguage__Python__2_5 = register("Programming Language :: Python :: 2.5")
	// Programming Language :: Python :: 2.6
	ProgrammingLanguage__Python__2_6 = register("Programming Language :: Python :: 2.6")
	// Programming Language :: Python :: 2.7
	ProgrammingLanguage__Python__2_7 = register("Programming Language :: Python :: 2.7")
	// Programming Language :: Python :: 3
	ProgrammingLanguage__Python__3 = register("Programming Language :: Python :: 3")
	// Programming Language :: Python :: 3 :: Only
	ProgrammingLanguage__Python__3__Only = register("Programming Language :: Python :: 3 :: Only")
	// Programming Language :: Python :: 3.0
	ProgrammingLanguage__Python__3_0 = register("Programming Language :: Python :: 3.0")
	// Programming Language :: Python :: 3.1
	ProgrammingLanguage__Python__3_1 = register("Programming Language :: Python :: 3.1")
	// Programming Language :: Python :: 3.2
	ProgrammingLanguage__Python__3_2 = register("Programming Language :: Python :: 3.2")
	// Programming Language :: Python :: 3.3
	ProgrammingLanguage__Python__3_3 = register("Programming Language :: Python :: 3.3")
	// Programming Language :: Python :: 3.4
	ProgrammingLanguage__Python__3_4 = register("Programming Language :: Python :: 3.4")
	// Programming Language :: Python :: 3.5
	ProgrammingLanguage__Python__3_5 = register("Programming Language :: Python :: 3.5")
	// Programming Language :: Python :: 3.6
	ProgrammingLanguage__Python__3_6 = register("Programming Language :: Python :: 3.6")
	// Programming Language :: Python :: 3.7
	ProgrammingLanguage__Python__3_7 = register("Programming Language :: Python :: 3.7")
	// Programming Language :: Python :: 3.8
	ProgrammingLanguage__Python__3_8 = register("Programming Language :: Python :: 3.8")
	// Programming Language :: Python :: 3.9
	ProgrammingLanguage__Python__3_9 = register("Programming Language :: Python :: 3.9")
	// Programming Language :: Python :: 3.10
	ProgrammingLanguage__Python__3_10 = register("Programming Language :: Python :: 3.10")
	// Programming Language :: Python :: 3.11
	ProgrammingLanguage__Python__3_11 = register("Programming Language :: Python :: 3.11")
	// Programming Language :: Python :: 3.12
	ProgrammingLanguage__Python__3_12 = register("Programming Language :: Python :: 3.12")
	// Programming Language :: Python :: 3.13
	ProgrammingLanguage__Python__3_13 = register("Programming Language :: Python :: 3.13")
	// Programming Language :: Python :: 3.14
	ProgrammingLanguage__Python__3_14 = register("Programming Language :: Python :: 3.14")
	// Programming Language :: Python :: Implementation
	ProgrammingLanguage__Python__Implementation = register("Programming Language :: Python :: Implementation")
	// Programming Language :: Python :: Implementation :: CPython
	ProgrammingLanguage__Python__Implementation__CPython = register("Programming Language :: Python :: Implementation :: CPython")
	// Programming Language :: Python :: Implementation :: IronPython
	ProgrammingLanguage__Python__Implementation__IronPython = register("Programming Language :: Python :: Implementation :: IronPython")
	// Programming Language :: Python :: Implementation :: Jython
	ProgrammingLanguage__Python__Implementation__Jython = register("Programming Language :: Python :: Implementation :: Jython")
	// Programming Language :: Python :: Implementation :: MicroPython
	ProgrammingLanguage__Python__Implementation__MicroPython = register("Programming Language :: Python :: Implementation :: MicroPython")
	// Programming Language :: Python :: Implementation :: PyPy
	ProgrammingLanguage__Python__Implementation__PyPy = register("Programming Language :: Python :: Implementation :: PyPy")
	// Programming Language :: Python :: Implementation :: Stackless
	ProgrammingLanguage__Python__Implementation__Stackless = register("Programming Language :: Python :: Implementation :: Stackless")
	// Programming Language :: R
	ProgrammingLanguage__R = register("Programming Language :: R")
	// Programming Language :: REBOL
	ProgrammingLanguage__REBOL = register("Programming Language :: REBOL")
	// Programming Language :: Rexx
	ProgrammingLanguage__Rexx = register("Programming Language :: Rexx")
	// Programming Language :: Ruby
	ProgrammingLanguage__Ruby = register("Programming Language :: Ruby")
	// Programming Language :: Rust
	ProgrammingLanguage__Rust = register("Programming Language :: Rust")
	// Programming Language :: SQL
	ProgrammingLanguage__SQL = register("Programming Language :: SQL")
	// Programming Language :: Scheme
	ProgrammingLanguage__Scheme = register("Programming Language :: Scheme")
	// Programming Language :: Simula
	ProgrammingLanguage__Simula = register("Programming Language :: Simula")
	// Programming Language :: Smalltalk
	ProgrammingLanguage__Smalltalk = register("Programming Language :: Smalltalk")
	// Programming Language :: Tcl
	ProgrammingLanguage__Tcl = register("Programming Language :: Tcl")
	// Programming Language :: Unix Shell
	ProgrammingLanguage__UnixShell = register("Programming Language :: Unix Shell")
	// Programming Language :: Visual Basic
	ProgrammingLanguage__VisualBasic = register("Programming Language :: Visual Basic")
	// Programming Language :: XBasic
	ProgrammingLanguage__XBasic = register("Programming Language :: XBasic")
	// Programming Language :: YACC
	ProgrammingLanguage__YACC = register("Programming Language :: YACC")
	// Programming Language :: Zope
	ProgrammingLanguage__Zope = register("Programming Language :: Zope")
	// Topic :: Adaptive Technologies
	Topic__AdaptiveTechnologies = register("Topic :: Adaptive Technologies")
	// Topic :: Artistic Software
	Topic__ArtisticSoftware = register("Topic :: Artistic Software")
	// Topic :: Communications
	Topic__Communications = register("Topic :: Communications")
	// Topic :: Communications :: BBS
	Topic__Communications__BBS = register("Topic :: Communications :: BBS")
	// Topic :: Communications :: Chat
	Topic__Communications__Chat = register("Topic :: Communications :: Chat")
	// Topic :: Communications :: Chat :: ICQ
	Topic__Communications__Chat__ICQ = register("Topic :: Communications :: Chat :: ICQ")
	// Topic :: Communications :: Chat :: Internet Relay Chat
	Topic__Communications__Chat__InternetRelayChat = register("Topic :: Communications :: Chat :: Internet Relay Chat")
	// Topic :: Communications :: Chat :: Unix Talk
	Topic__Communications__Chat__UnixTalk = register("Topic :: Communications :: Chat :: Unix Talk")
	// Topic :: Communications :: Conferencing
	Topic__Communications__Conferencing = register("Topic :: Communications :: Conferencing")
	// Topic :: Communications :: Email
	Topic__Communications__Email = register("Topic :: Communications :: Email")
	// Topic :: Communications :: Email :: Address Book
	Topic__Communications__Email__AddressBook = register("Topic :: Communications :: Email :: Address Book")
	// Topic :: Communications :: Email :: Email Clients (MUA)
	Topic__Communications__Email__EmailClientsMUA = register("Topic :: Communications :: Email :: Email Clients (MUA)")
	// Topic :: Communications :: Email :: Filters
	Topic__Communications__Email__Filters = register("Topic :: Communications :: Email :: Filters")
	// Topic :: Communications :: Email :: Mail Transport Agents
	Topic__Communications__Email__MailTransportAgents = register("Topic :: Communications :: Email :: Mail Transport Agents")
	// Topic :: Communications :: Email :: Mailing List Servers
	Topic__Communications__Email__MailingListServers = register("Topic :: Communications :: Email :: Mailing List Servers")
	// Topic :: Communications :: Email :: Post-Office
	Topic__Communications__Email__PostOffice = register("Topic :: Communications :: Email :: Post-Office")
	// Topic :: Communications :: Email :: Post-Office :: IMAP
	Topic__Communications__Email__PostOffice__IMAP = register("Topic :: Communications :: Email :: Post-Office :: IMAP")
	// Topic :: Communications :: Email :: Post-Office :: POP3
	Topic__Communications__Email__PostOffice__POP3 = register("Topic :: Communications :: Email :: Post-Office :: POP3")
	// Topic :: Communications :: FIDO
	Topic__Communications__FIDO = register("Topic :: Communications :: FIDO")
	// Topic :: Communications :: Fax
	Topic__Communications__Fax = register("Topic :: Communications :: Fax")
	// Topic :: Communications :: File Sharing
	Topic__Communications__FileSharing = register("Topic :: Communications :: File Sharing")
	// Topic :: Communications :: File Sharing :: Gnutella
	Topic__Communications__FileSharing__Gnutella = register("Topic :: Communications :: File Sharing :: Gnutella")
	// Topic :: Communications :: File Sharing :: Napster
	Topic__Communications__FileSharing__Napster = register("Topic :: Communications :: File Sharing :: Napster")
	// Topic :: Communications :: Ham Radio
	Topic__Communications__HamRadio = register("Topic :: Communications :: Ham Radio")
	// Topic :: Communications :: Internet Phone
	Topic__Communications__InternetPhone = register("Topic :: Communications :: Internet Phone")
	// Topic :: Communications :: Telephony
	Topic__Communications__Telephony = register("Topic :: Communications :: Telephony")
	// Topic :: Communications :: Usenet News
	Topic__Communications__UsenetNews = register("Topic :: Communications :: Usenet News")
	// Topic :: Database
	Topic__Database = register("Topic :: Database")
	// Topic :: Database :: Database Engines/Servers
	Topic__Database__DatabaseEnginesServers = register("Topic :: Database :: Database Engines/Servers")
	// Topic :: Database :: Front-Ends
	Topic__Database__FrontEnds = register("Topic :: Database :: Front-Ends")
	// Topic :: Desktop Environment
	Topic__DesktopEnvironment = register("Topic :: Desktop Environment")
	// Topic :: Desktop Environment :: File Managers
	Topic__DesktopEnvironment__FileManagers = register("Topic :: Desktop Environment :: File Managers")
	// Topic :: Desktop Environment :: GNUstep
	Topic__DesktopEnvironment__GNUstep = register("Topic :: Desktop Environment :: GNUstep")
	// Topic :: Desktop Environment :: Gnome
	Topic__DesktopEnvironment__Gnome = register("Topic :: Desktop Environment :: Gnome")
	// Topic :: Desktop Environment :: K Desktop Environment (KDE)
	Topic__DesktopEnvironment__KDesktopEnvironmentKDE = register("Topic :: Desktop Environment :: K Desktop Environment (KDE)")
	// Topic :: Desktop Environment :: K Desktop Environment (KDE) :: Themes
	Topic__DesktopEnvironment__KDesktopEnvironmentKDE__Themes = register("Topic :: Desktop Environment :: K Desktop Environment (KDE) :: Themes")
	// Topic :: Desktop Environment :: PicoGUI
	Topic__DesktopEnvironment__PicoGUI = register("Topic :: Desktop Environment :: PicoGUI")
	// Topic :: Desktop Environment :: PicoGUI :: Applications
	Topic__DesktopEnvironment__PicoGUI__Applications = register("Topic :: Desktop Environment :: PicoGUI :: Applications")
	// Topic :: Desktop Environment :: PicoGUI :: Themes
	Topic__DesktopEnvironment__PicoGUI__Themes = register("Topic :: Desktop Environment :: PicoGUI :: Themes")
	// Topic :: Desktop Environment :: Screen Savers
	Topic__DesktopEnvironment__ScreenSavers = register("Topic :: Desktop Environment :: Screen Savers")
	// Topic :: Desktop Environment :: Window Managers
	Topic__DesktopEnvironment__WindowManagers = register("Topic :: Desktop Environment :: Window Managers")
	// Topic :: Desktop Environment :: Window Managers :: Afterstep
	Topic__DesktopEnvironment__WindowManagers__Afterstep = register("Topic :: Desktop Environment :: Window Managers :: Afterstep")
	// Topic :: Desktop Environment :: Window Managers :: Afterstep :: Themes
	Topic__DesktopEnvironment__WindowManagers__Afterstep__Themes = register("Topic :: Desktop Environment :: Window Managers :: Afterstep :: Themes")
	// Topic :: Desktop Environment :: Window Managers :: Applets
	Topic__DesktopEnvironment__WindowManagers__Applets = register("Topic :: Desktop Environment :: Window Managers :: Applets")
	// Topic :: Desktop Environment :: Window Managers :: Blackbox
	Topic__DesktopEnvironment__WindowManagers__Blackbox = register("Topic :: Desktop Environment :: Window Managers :: Blackbox")
	// Topic :: Desktop Environment :: Window Managers :: Blackbox :: Themes
	Topic__DesktopEnvironment__WindowManagers__Blackbox__Themes = register("Topic :: Desktop Environment :: Window Managers :: Blackbox :: Themes")
	// Topic :: Desktop Environment :: Window Managers :: CTWM
	Topic__DesktopEnvironment__WindowManagers__CTWM = register("Topic :: Desktop Environment :: Window Managers :: CTWM")
	// Topic :: Desktop Environment :: Window Managers :: CTWM :: Themes
	Topic__DesktopEnvironment__WindowManagers__CTWM__Themes = register("Topic :: Desktop Environment :: Window Managers :: CTWM :: Themes")
	// Topic :: Desktop Environment :: Window Managers :: Enlightenment
	Topic__DesktopEnvironment__WindowManagers__Enlightenment = register("Topic :: Desktop Environment :: Window Managers :: Enlightenment")
	// Topic :: Desktop Environment :: Window Managers :: FVWM
	Topic__DesktopEnvironment__WindowManagers__FVWM = register("Topic :: Desktop Environment :: Window Managers :: FVWM")
	// Topic :: Desktop Environment :: Window Managers :: FVWM :: Themes
	Topic__DesktopEnvironment__WindowManagers__FVWM__Themes = register("Topic :: Desktop Environment :: Window Managers :: FVWM :: Themes")
	// Topic :: Desktop Environment :: Window Managers :: Fluxbox
	Topic__DesktopEnvironment__WindowManagers__Fluxbox = register("Topic :: Desktop Environment :: Window Managers :: Fluxbox")
	// Topic :: Desktop Environment :: Window Managers :: Fluxbox :: Themes
	Topic__DesktopEnvironment__WindowManagers__Fluxbox__Themes = register("Topic :: Desktop Environment :: Window Managers :: Fluxbox :: Themes")
	// Topic :: Desktop Environment :: Window Managers :: IceWM
	Topic__DesktopEnvironment__WindowManagers__IceWM = register("Topic :: Desktop Environment :: Window Managers :: IceWM")
	// Topic :: Desktop Environment :: Window Managers :: IceWM :: Themes
	Topic__DesktopEnvironment__WindowManagers__IceWM__Themes = register("Topic :: Desktop Environment :: Window Managers :: IceWM :: Themes")
	// Topic :: Desktop Environment :: Window Managers :: MetaCity
	Topic__DesktopEnvironment__WindowManagers__MetaCity = register("Topic :: Desktop Environment :: Window Managers :: MetaCity")
	// Topic :: Desktop Environment :: Window Managers :: MetaCity :: Themes
	Topic__DesktopEnvironment__WindowManagers__MetaCity__Themes = register("Topic :: Desktop Environment :: Window Managers :: MetaCity :: Themes")
	// Topic :: Desktop Environment :: Window Managers :: Oroborus
	Topic__DesktopEnvironment__WindowManagers__Oroborus = register("Topic :: Desktop Environment :: Window Managers :: Oroborus")
	// Topic :: Desktop Environment :: Window Managers :: Oroborus :: Themes
	Topic__DesktopEnvironment__WindowManagers__Oroborus__Themes = register("Topic :: Desktop Environment :: Window Managers :: Oroborus :: Themes")
	// Topic :: Desktop Environment :: Window Managers :: Sawfish
	Topic__DesktopEnvironment__WindowManagers__Sawfish = register("Topic :: Desktop Environment :: Window Managers :: Sawfish")
	// Topic :: Desktop Environment :: Window Managers :: Waimea
	Topic__DesktopEnvironment__WindowManagers__Waimea = register("Topic :: Desktop Environment :: Window Managers :: Waimea")
	// Topic :: Desktop Environment :: Window Managers :: Waimea :: Themes
	Topic__DesktopEnvironment__WindowManagers__Waimea__Themes = register("Topic :: Desktop Environment :: Window Managers :: Waimea :: Themes")
	// Topic :: Desktop Environment :: Window Managers :: Window Maker
	Topic__DesktopEnvironment__WindowManagers__WindowMaker = register("Topic :: Desktop Environment :: Window Managers :: Window Maker")
	// Topic :: Desktop Environment :: Window Managers :: XFCE
	Topic__DesktopEnvironment__WindowManagers__XFCE = register("Topic :: Desktop Environment :: Window Managers :: XFCE")
	// Topic :: Desktop Environment :: Window Managers :: XFCE :: Themes
	Topic__DesktopEnvironment__WindowManagers__XFCE__Themes = register("Topic :: Desktop Environment :: Window Managers :: XFCE :: Themes")
	// Topic :: Documentation
	Topic__Documentation = register("Topic :: Documentation")
	// Topic :: Documentation :: Sphinx
	Topic__Documentation__Sphinx = register("Topic :: Documentation :: Sphinx")
	// Topic :: Education
	Topic__Education = register("Topic :: Education")
	// Topic :: Education :: Computer Aided Instruction (CAI)
	Topic__Education__ComputerAidedInstructionCAI = register("Topic :: Education :: Computer Aided Instruction (CAI)")
	// Topic :: Education :: Testing
	Topic__Education__Testing = register("Topic :: Education :: Testing")
	// Topic :: File Formats
	Topic__FileFormats = register("Topic :: File Formats")
	// Topic :: File Formats :: JSON
	Topic__FileFormats__JSON = register("Topic :: File Formats :: JSON")
	// Topic :: File Formats :: JSON :: JSON Schema
	Topic__FileFormats__JSON__JSONSchema = register("Topic :: File Formats :: JSON :: JSON Schema")
	// Topic :: Games/Entertainment
	Topic__GamesEntertainment = register("Topic :: Games/Entertainment")
	// Topic :: Games/Entertainment :: Arcade
	Topic__GamesEntertainment__Arcade = register("Topic :: Games/Entertainment :: Arcade")
	// Topic :: Games/Entertainment :: Board Games
	Topic__GamesEntertainment__BoardGames = register("Topic :: Games/Entertainment :: Board Games")
	// Topic :: Games/Entertainment :: First Person Shooters
	Topic__GamesEntertainment__FirstPersonShooters = register("Topic :: Games/Entertainment :: First Person Shooters")
	// Topic :: Games/Entertainment :: Fortune Cookies
	Topic__GamesEntertainment__FortuneCookies = register("Topic :: Games/Entertainment :: Fortune Cookies")
	// Topic :: Games/Entertainment :: Multi-User Dungeons (MUD)
	Topic__GamesEntertainment__MultiUserDungeonsMUD = register("Topic :: Games/Entertainment :: Multi-User Dungeons (MUD)")
	// Topic :: Games/Entertainment :: Puzzle Games
	Topic__GamesEntertainment__PuzzleGames = register("Topic :: Games/Entertainment :: Puzzle Games")
	// Topic :: Games/Entertainment :: Real Time Strategy
	Topic__GamesEntertainment__RealTimeStrategy = register("Topic :: Games/Entertainment :: Real Time Strategy")
	// Topic :: Games/Entertainment :: Role-Playing
	Topic__GamesEntertainment__RolePlaying = register("Topic :: Games/Entertainment :: Role-Playing")
	// Topic :: Games/Entertainment :: Side-Scrolling/Arcade Games
	Topic__GamesEntertainment__SideScrollingArcadeGames = register("Topic :: Games/Entertainment :: Side-Scrolling/Arcade Games")
	// Topic :: Games/Entertainment :: Simulation
	Topic__GamesEntertainment__Simulation = register("Topic :: Games/Entertainment :: Simulation")
	// Topic :: Games/Entertainment :: Turn Based Strategy
	Topic__GamesEntertainment__TurnBasedStrategy = register("Topic :: Games/Entertainment :: Turn Based Strategy")
	// Topic :: Home Automation
	Topic__HomeAutomation = register("Topic :: Home Automation")
	// Topic :: Internet
	Topic__Internet = register("Topic :: Internet")
	// Topic :: Internet :: File Transfer Protocol (FTP)
	Topic__Internet__FileTransferProtocolFTP = register("Topic :: Internet :: File Transfer Protocol (FTP)")
	// Topic :: Internet :: Finger
	Topic__Internet__Finger = register("Topic :: Internet :: Finger")
	// Topic :: Internet :: Log Analysis
	Topic__Internet__LogAnalysis = register("Topic :: Internet :: Log Analysis")
	// Topic :: Internet :: Name Service (DNS)
	Topic__Internet__NameServiceDNS = register("Topic :: Internet :: Name Service (DNS)")
	// Topic :: Internet :: Proxy Servers
	Topic__Internet__ProxyServers = register("Topic :: Internet :: Proxy Servers")
	// Topic :: Internet :: WAP
	Topic__Internet__WAP = register("Topic :: Internet :: WAP")
	// Topic :: Internet :: WWW/HTTP
	Topic__Internet__WWWHTTP = register("Topic :: Internet :: WWW/HTTP")
	// Topic :: Internet :: WWW/HTTP :: Browsers
	Topic__Internet__WWWHTTP__Browsers = register("Topic :: Internet :: WWW/HTTP :: Browsers")
	// Topic :: Internet :: WWW/HTTP :: Dynamic Content
	Topic__Internet__WWWHTTP__DynamicContent = register("Topic :: Internet :: WWW/HTTP :: Dynamic Content")
	// Topic :: Internet :: WWW/HTTP :: Dynamic Content :: CGI Tools/Libraries
	Topic__Internet__WWWHTTP__DynamicContent__CGIToolsLibraries = register("Topic :: Internet :: WWW/HTTP :: Dynamic Content :: CGI Tools/Libraries")
	// Topic :: Internet :: WWW/HTTP :: Dynamic Content :: Message Boards
	Topic__Internet__WWWHTTP__DynamicContent__MessageBoards = register("Topic :: Internet :: WWW/HTTP :: Dynamic Content :: Message Boards")
	// Topic :: Internet :: WWW/HTTP :: Dynamic Content :: News/Diary
	Topic__Internet__WWWHTTP__DynamicContent__NewsDiary = register("Topic :: Internet :: WWW/HTTP :: Dynamic Content :: News/Diary")
	// Topic :: Internet :: WWW/HTTP :: Dynamic Content :: Page Counters
	Topic__Internet__WWWHTTP__DynamicContent__PageCounters = register("Topic :: Internet :: WWW/HTTP :: Dynamic Content :: Page Counters")
	// Topic :: Internet :: WWW/HTTP :: Dynamic Content :: Wiki
	Topic__Internet__WWWHTTP__DynamicContent__Wiki = register("Topic :: Internet :: WWW/HTTP :: Dynamic Content :: Wiki")
	// Topic :: Internet :: WWW/HTTP :: HTTP Servers
	Topic__Internet__WWWHTTP__HTTPServers = register("Topic :: Internet :: WWW/HTTP :: HTTP Servers")
	// Topic :: Internet :: WWW/HTTP :: Indexing/Search
	Topic__Internet__WWWHTTP__IndexingSearch = register("Topic :: Internet :: WWW/HTTP :: Indexing/Search")
	// Topic :: Internet :: WWW/HTTP :: Session
	Topic__Internet__WWWHTTP__Session = register("Topic :: Internet :: WWW/HTTP :: Session")
	// Topic :: Internet :: WWW/HTTP :: Site Management
	Topic__Internet__WWWHTTP__SiteManagement = register("Topic :: Internet :: WWW/HTTP :: Site Management")
	// Topic :: Internet :: WWW/HTTP :: Site Management :: Link Checking
	Topic__Internet__WWWHTTP__SiteManagement__LinkChecking = register("Topic :: Internet :: WWW/HTTP :: Site Management :: Link Checking")
	// Topic :: Internet :: WWW/HTTP :: WSGI
	Topic__Internet__WWWHTTP__WSGI = register("Topic :: Internet :: WWW/HTTP :: WSGI")
	// Topic :: Internet :: WWW/HTTP :: WSGI :: Application
	Topic__Internet__WWWHTTP__WSGI__Application = register("Topic :: Internet :: WWW/HTTP :: WSGI :: Application")
	// Topic :: Internet :: WWW/HTTP :: WSGI :: Middleware
	Topic__Internet__WWWHTTP__WSGI__Middleware = register("Topic :: Internet :: WWW/HTTP :: WSGI :: Middleware")
	// Topic :: Internet :: WWW/HTTP :: WSGI :: Server
	Topic__Internet__WWWHTTP__WSGI__Server = register("Topic :: Internet :: WWW/HTTP :: WSGI :: Server")
	// Topic :: Internet :: XMPP
	Topic__Internet__XMPP = register("Topic :: Internet :: XMPP")
	// Topic :: Internet :: Z39.50
	Topic__Internet__Z39_50 = register("Topic :: Internet :: Z39.50")
	// Topic :: Multimedia
	Topic__Multimedia = register("Topic :: Multimedia")
	// Topic :: Multimedia :: Graphics
	Topic__Multimedia__Graphics = register("Topic :: Multimedia :: Graphics")
	// Topic :: Multimedia :: Graphics :: 3D Modeling
	Topic__Multimedia__Graphics__3DModeling = register("Topic :: Multimedia :: Graphics :: 3D Modeling")
	// Topic :: Multimedia :: Graphics :: 3D Rendering
	Topic__Multimedia__Graphics__3DRendering = register("Topic :: Multimedia :: Graphics :: 3D Rendering")
	// Topic :: Multimedia :: Graphics :: Capture
	Topic__Multimedia__Graphics__Capture = register("Topic :: Multimedia :: Graphics :: Capture")
	// Topic :: Multimedia :: Graphics :: Capture :: Digital Camera
	Topic__Multimedia__Graphics__Capture__DigitalCamera = register("Topic :: Multimedia :: Graphics :: Capture :: Digital Camera")
	// Topic :: Multimedia :: Graphics :: Capture :: Scanners
	Topic__Multimedia__Graphics__Capture__Scanners = register("Topic :: Multimedia :: Graphics :: Capture :: Scanners")
	// Topic :: Multimedia :: Graphics :: Capture :: Screen Capture
	Topic__Multimedia__Graphics__Capture__ScreenCapture = register("Topic :: Multimedia :: Graphics :: Capture :: Screen Capture")
	// Topic :: Multimedia :: Graphics :: Editors
	Topic__Multimedia__Graphics__Editors = register("Topic :: Multimedia :: Graphics :: Editors")
	// Topic :: Multimedia :: Graphics :: Editors :: Raster-Based
	Topic__Multimedia__Graphics__Editors__RasterBased = register("Topic :: Multimedia :: Graphics :: Editors :: Raster-Based")
	// Topic :: Multimedia :: Graphics :: Editors :: Vector-Based
	Topic__Multimedia__Graphics__Editors__VectorBased = register("Topic :: Multimedia :: Graphics :: Editors :: Vector-Based")
	// Topic :: Multimedia :: Graphics :: Graphics Conversion
	Topic__Multimedia__Graphics__GraphicsConversion = register("Topic :: Multimedia :: Graphics :: Graphics Conversion")
	// Topic :: Multimedia :: Graphics :: Presentation
	Topic__Multimedia__Graphics__Presentation = register("Topic :: Multimedia :: Graphics :: Presentation")
	// Topic :: Multimedia :: Graphics :: Viewers
	Topic__Multimedia__Graphics__Viewers = register("Topic :: Multimedia :: Graphics :: Viewers")
	// Topic :: Multimedia :: Sound/Audio
	Topic__Multimedia__SoundAudio = register("Topic :: Multimedia :: Sound/Audio")
	// Topic :: Multimedia :: Sound/Audio :: Analysis
	Topic__Multimedia__SoundAudio__Analysis = register("Topic :: Multimedia :: Sound/Audio :: Analysis")
	// Topic :: Multimedia :: Sound/Audio :: CD Audio
	Topic__Multimedia__SoundAudio__CDAudio = register("Topic :: Multimedia :: Sound/Audio :: CD Audio")
	// Topic :: Multimedia :: Sound/Audio :: CD Audio :: CD Playing
	Topic__Multimedia__SoundAudio__CDAudio__CDPlaying = register("Topic :: Multimedia :: Sound/Audio :: CD Audio :: CD Playing")
	// Topic :: Multimedia :: Sound/Audio :: CD Audio :: CD Ripping
	Topic__Multimedia__SoundAudio__CDAudio__CDRipping = register("Topic :: Multimedia :: Sound/Audio :: CD Audio :: CD Ripping")
	// Topic :: Multimedia :: Sound/Audio :: CD Audio :: CD Writing
	Topic__Multimedia__SoundAudio__CDAudio__CDWriting = register("Topic :: Multimedia :: Sound/Audio :: CD Audio :: CD Writing")
	// Topic :: Multimedia :: Sound/Audio :: Capture/Recording
	Topic__Multimedia__SoundAudio__CaptureRecording = register("Topic :: Multimedia :: Sound/Audio :: Capture/Recording")
	// Topic :: Multimedia :: Sound/Audio :: Conversion
	Topic__Multimedia__SoundAudio__Conversion = register("Topic :: Multimedia :: Sound/Audio :: Conversion")
	// Topic :: Multimedia :: Sound/Audio :: Editors
	Topic__Multimedia__SoundAudio__Editors = register("Topic :: Multimedia :: Sound/Audio :: Editors")
	// Topic :: Multimedia :: Sound/Audio :: MIDI
	Topic__Multimedia__SoundAudio__MIDI = register("Topic :: Multimedia :: Sound/Audio :: MIDI")
	// Topic :: Multimedia :: Sound/Audio :: Mixers
	Topic__Multimedia__SoundAudio__Mixers = register("Topic :: Multimedia :: Sound/Audio :: Mixers")
	// Topic :: Multimedia :: Sound/Audio :: Players
	Topic__Multimedia__SoundAudio__Players = register("Topic :: Multimedia :: Sound/Audio :: Players")
	// Topic :: Multimedia :: Sound/Audio :: Players :: MP3
	Topic__Multimedia__SoundAudio__Players__MP3 = register("Topic :: Multimedia :: Sound/Audio :: Players :: MP3")
	// Topic :: Multimedia :: Sound/Audio :: Sound Synthesis
	Topic__Multimedia__SoundAudio__SoundSynthesis = register("Topic :: Multimedia :: Sound/Audio :: Sound Synthesis")
	// Topic :: Multimedia :: Sound/Audio :: Speech
	Topic__Multimedia__SoundAudio__Speech = register("Topic :: Multimedia :: Sound/Audio :: Speech")
	// Topic :: Multimedia :: Video
	Topic__Multimedia__Video = register("Topic :: Multimedia :: Video")
	// Topic :: Multimedia :: Video :: Capture
	Topic__Multimedia__Video__Capture = register("Topic :: Multimedia :: Video :: Capture")
	// Topic :: Multimedia :: Video :: Conversion
	Topic__Multimedia__Video__Conversion = register("Topic :: Multimedia :: Video :: Conversion")
	// Topic :: Multimedia :: Video :: Display
	Topic__Multimedia__Video__Display = register("Topic :: Multimedia :: Video :: Display")
	// Topic :: Multimedia :: Video :: Non-Linear Editor
	Topic__Multimedia__Video__NonLinearEditor = register("Topic :: Multimedia :: Video :: Non-Linear Editor")
	// Topic :: Office/Business
	Topic__OfficeBusiness = register("Topic :: Office/Business")
	// Topic :: Office/Business :: Financial
	Topic__OfficeBusiness__Financial = register("Topic :: Office/Business :: Financial")
	// Topic :: Office/Business :: Financial :: Accounting
	Topic__OfficeBusiness__Financial__Accounting = register("Topic :: Office/Business :: Financial :: Accounting")
	// Topic :: Office/Business :: Financial :: Investment
	Topic__OfficeBusiness__Financial__Investment = register("Topic :: Office/Business :: Financial :: Investment")
	// Topic :: Office/Business :: Financial :: Point-Of-Sale
	Topic__OfficeBusiness__Financial__PointOfSale = register("Topic :: Office/Business :: Financial :: Point-Of-Sale")
	// Topic :: Office/Business :: Financial :: Spreadsheet
	Topic__OfficeBusiness__Financial__Spreadsheet = register("Topic :: Office/Business :: Financial :: Spreadsheet")
	// Topic :: Office/Business :: Groupware
	Topic__OfficeBusiness__Groupware = register("Topic :: Office/Business :: Groupware")
	// Topic :: Office/Business :: News/Diary
	Topic__OfficeBusiness__NewsDiary = register("Topic :: Office/Business :: News/Diary")
	// Topic :: Office/Business :: Office Suites
	Topic__OfficeBusiness__OfficeSuites = register("Topic :: Office/Business :: Office Suites")
	// Topic :: Office/Business :: Scheduling
	Topic__OfficeBusiness__Scheduling = register("Topic :: Office/Business :: Scheduling")
	// Topic :: Other/Nonlisted Topic
	Topic__OtherNonlistedTopic = register("Topic :: Other/Nonlisted Topic")
	// Topic :: Printing
	Topic__Printing = register("Topic :: Printing")
	// Topic :: Religion
	Topic__Religion = register("Topic :: Religion")
	// Topic :: Scientific/Engineering
	Topic__ScientificEngineering = register("Topic :: Scientific/Engineering")
	// Topic :: Scientific/Engineering :: Artificial Intelligence
	Topic__ScientificEngineering__ArtificialIntelligence = register("Topic :: Scientific/Engineering :: Artificial Intelligence")
	// Topic :: Scientific/Engineering :: Artificial Life
	Topic__ScientificEngineering__ArtificialLife = register("Topic :: Scientific/Engineering :: Artificial Life")
	// Topic :: Scientific/Engineering :: Astronomy
	Topic__ScientificEngineering__Astronomy = register("Topic :: Scientific/Engineering :: Astronomy")
	// Topic :: Scientific/Engineering :: Atmospheric Science
	Topic__ScientificEngineering__AtmosphericScience = register("Topic :: Scientific/Engineering :: Atmospheric Science")
	// Topic :: Scientific/Engineering :: Bio-Informatics
	Topic__ScientificEngineering__BioInformatics = register("Topic :: Scientific/Engineering :: Bio-Informatics")
	// Topic :: Scientific/Engineering :: Chemistry
	Topic__ScientificEngineering__Chemistry = register("Topic :: Scientific/Engineering :: Chemistry")
	// Topic :: Scientific/Engineering :: Electronic Design Automation (EDA)
	Topic__ScientificEngineering__ElectronicDesignAutomationEDA = register("Topic :: Scientific/Engineering :: Electronic Design Automation (EDA)")
	// Topic :: Scientific/Engineering :: GIS
	Topic__ScientificEngineering__GIS = register("Topic :: Scientific/Engineering :: GIS")
	// Topic :: Scientific/Engineering :: Human Machine Interfaces
	Topic__ScientificEngineering__HumanMachineInterfaces = register("Topic :: Scientific/Engineering :: Human Machine Interfaces")
	// Topic :: Scientific/Engineering :: Hydrology
	Topic__ScientificEngineering__Hydrology = register("Topic :: Scientific/Engineering :: Hydrology")
	// Topic :: Scientific/Engineering :: Image Processing
	Topic__ScientificEngineering__ImageProcessing = register("Topic :: Scientific/Engineering :: Image Processing")
	// Topic :: Scientific/Engineering :: Image Recognition
	Topic__ScientificEngineering__ImageRecognition = register("Topic :: Scientific/Engineering :: Image Recognition")
	// Topic :: Scientific/Engineering :: Information Analysis
	Topic__ScientificEngineering__InformationAnalysis = register("Topic :: Scientific/Engineering :: Information Analysis")
	// Topic :: Scientific/Engineering :: Interface Engine/Protocol Translator
	Topic__ScientificEngineering__InterfaceEngineProtocolTranslator = register("Topic :: Scientific/Engineering :: Interface Engine/Protocol Translator")
	// Topic :: Scientific/Engineering :: Mathematics
	Topic__ScientificEngineering__Mathematics = register("Topic :: Scientific/Engineering :: Mathematics")
	// Topic :: Scientific/Engineering :: Medical Science Apps.
	Topic__ScientificEngineering__MedicalScienceApps_ = register("Topic :: Scientific/Engineering :: Medical Science Apps.")
	// Topic :: Scientific/Engineering :: Oceanography
	Topic__ScientificEngineering__Oceanography = register("Topic :: Scientific/Engineering :: Oceanography")
	// Topic :: Scientific/Engineering :: Physics
	Topic__ScientificEngineering__Physics = register("Topic :: Scientific/Engineering :: Physics")
	// Topic :: Scientific/Engineering :: Visualization
	Topic__ScientificEngineering__Visualization = register("Topic :: Scientific/Engineering :: Visualization")
	// Topic :: Security
	Topic__Security = register("Topic :: Security")
	// Topic :: Security :: Cryptography
	Topic__Security__Cryptography = register("Topic :: Security :: Cryptography")
	// Topic :: Sociology
	Topic__Sociology = register("Topic :: Sociology")
	// Topic :: Sociology :: Genealogy
	Topic__Sociology__Genealogy = register("Topic :: Sociology :: Genealogy")
	// Topic :: Sociology :: History
	Topic__Sociology__History = register("Topic :: Sociology :: History")
	// Topic :: Software Development
	Topic__SoftwareDevelopment = register("Topic :: Software Development")
	// Topic :: Software Development :: Assemblers
	Topic__SoftwareDevelopment__Assemblers = register("Topic :: Software Development :: Assemblers")
	// Topic :: Software Development :: Bug Tracking
	Topic__SoftwareDevelopment__BugTracking = register("Topic :: Software Development :: Bug Tracking")
	// Topic :: Software Development :: Build Tools
	Topic__SoftwareDevelopment__BuildTools = register("Topic :: Software Development :: Build Tools")
	// Topic :: Software Development :: Code Generators
	Topic__SoftwareDevelopment__CodeGenerators = register("Topic :: Software Development :: Code Generators")
	// Topic :: Software Development :: Compilers
	Topic__SoftwareDevelopment__Compilers = register("Topic :: Software Development :: Compilers")
	// Topic :: Software Development :: Debuggers
	Topic__SoftwareDevelopment__Debuggers = register("Topic :: Software Development :: Debuggers")
	// Topic :: Software Development :: Disassemblers
	Topic__SoftwareDevelopment__Disassemblers = register("Topic :: Software Development :: Disassemblers")
	// Topic :: Software Development :: Documentation
	Topic__SoftwareDevelopment__Documentation = register("Topic :: Software Development :: Documentation")
	// Topic :: Software Development :: Embedded Systems
	Topic__SoftwareDevelopment__EmbeddedSystems = register("Topic :: Software Development :: Embedded Systems")
	// Topic :: Software Development :: Internationalization
	Topic__SoftwareDevelopment__Internationalization = register("Topic :: Software Development :: Internationalization")
	// Topic :: Software Development :: Interpreters
	Topic__SoftwareDevelopment__Interpreters = register("Topic :: Software Development :: Interpreters")
	// Topic :: Software Development :: Libraries
	Topic__SoftwareDevelopment__Libraries = register("Topic :: Software Development :: Libraries")
	// Topic :: Software Development :: Libraries :: Application Frameworks
	Topic__SoftwareDevelopment__Libraries__ApplicationFrameworks = register("Topic :: Software Development :: Libraries :: Application Frameworks")
	// Topic :: Software Development :: Libraries :: Java Libraries
	Topic__SoftwareDevelopment__Libraries__JavaLibraries = register("Topic :: Software Development :: Libraries :: Java Libraries")
	// Topic :: Software Development :: Libraries :: PHP Classes
	Topic__SoftwareDevelopment__Libraries__PHPClasses = register("Topic :: Software Development :: Libraries :: PHP Classes")
	// Topic :: Software Development :: Libraries :: Perl Modules
	Topic__SoftwareDevelopment__Libraries__PerlModules = register("Topic :: Software Development :: Libraries :: Perl Modules")
	// Topic :: Software Development :: Libraries :: Pike Modules
	Topic__SoftwareDevelopment__Libraries__PikeModules = register("Topic :: Software Development :: Libraries :: Pike Modules")
	// Topic :: Software Development :: Libraries :: Python Modules
	Topic__SoftwareDevelopment__Libraries__PythonModules = register("Topic :: Software Development :: Libraries :: Python Modules")
	// Topic :: Software Development :: Libraries :: Ruby Modules
	Topic__SoftwareDevelopment__Libraries__RubyModules = register("Topic :: Software Development :: Libraries :: Ruby Modules")
	// Topic :: Software Development :: Libraries :: Tcl Extensions
	Topic__SoftwareDevelopment__Libraries__TclExtensions = register("Topic :: Software Development :: Libraries :: Tcl Extensions")
	// Topic :: Software Development :: Libraries :: pygame
	Topic__SoftwareDevelopment__Libraries__pygame = register("Topic :: Software Development :: Libraries :: pygame")
	// Topic :: Software Development :: Localization
	Topic__SoftwareDevelopment__Localization = register("Topic :: Software Development :: Localization")
	// Topic :: Software Development :: Object Brokering
	Topic__SoftwareDevelopment__ObjectBrokering = register("Topic :: Software Development :: Object Brokering")
	// Topic :: Software Development :: Object Brokering :: CORBA
	Topic__SoftwareDevelopment__ObjectBrokering__CORBA = register("Topic :: Software Development :: Object Brokering :: CORBA")
	// Topic :: Software Development :: Pre-processors
	Topic__SoftwareDevelopment__Preprocessors = register("Topic :: Software Development :: Pre-processors")
	// Topic :: Software Development :: Quality Assurance
	Topic__SoftwareDevelopment__QualityAssurance = register("Topic :: Software Development :: Quality Assurance")
	// Topic :: Software Development :: Testing
	Topic__SoftwareDevelopment__Testing = register("Topic :: Software Development :: Testing")
	// Topic :: Software Development :: Testing :: Acceptance
	Topic__SoftwareDevelopment__Testing__Acceptance = register("Topic :: Software Development :: Testing :: Acceptance")
	// Topic :: Software Development :: Testing :: BDD
	Topic__SoftwareDevelopment__Testing__BDD = register("Topic :: Software Development :: Testing :: BDD")
	// Topic :: Software Development :: Testing :: Mocking
	Topic__SoftwareDevelopment__Testing__Mocking = register("Topic :: Software Development :: Testing :: Mocking")
	// Topic :: Software Development :: Testing :: Traffic Generation
	Topic__SoftwareDevelopment__Testing__TrafficGeneration = register("Topic :: Software Development :: Testing :: Traffic Generation")
	// Topic :: Software Development :: Testing :: Unit
	Topic__SoftwareDevelopment__Testing__Unit = register("Topic :: Software Development :: Testing :: Unit")
	// Topic :: Software Development :: User Interfaces
	Topic__SoftwareDevelopment__UserInterfaces = register("Topic :: Software Development :: User Interfaces")
	// Topic :: Software Development :: Version Control
	Topic__SoftwareDevelopment__VersionControl = register("Topic :: Software Development :: Version Control")
	// Topic :: Software Development :: Version Control :: Bazaar
	Topic__SoftwareDevelopment__VersionControl__Bazaar = register("Topic :: Software Development :: Version Control :: Bazaar")
	// Topic :: Software Development :: Version Control :: CVS
	Topic__SoftwareDevelopment__VersionControl__CVS = register("Topic :: Software Development :: Version Control :: CVS")
	// Topic :: Software Development :: Version Control :: Git
	Topic__SoftwareDevelopment__VersionControl__Git = register("Topic :: Software Development :: Version Control :: Git")
	// Topic :: Software Development :: Version Control :: Mercurial
	Topic__SoftwareDevelopment__VersionControl__Mercurial = register("Topic :: Software Development :: Version Control :: Mercurial")
	// Topic :: Software Development :: Version Control :: RCS
	Topic__SoftwareDevelopment__VersionControl__RCS = register("Topic :: Software Development :: Version Control :: RCS")
	// Topic :: Software Development :: Version Control :: SCCS
	Topic__SoftwareDevelopment__VersionControl__SCCS = register("Topic :: Software Development :: Version Control :: SCCS")
	// Topic :: Software Development :: Widget Sets
	Topic__SoftwareDevelopment__WidgetSets = register("Topic :: Software Development :: Widget Sets")
	// Topic :: System
	Topic__System = register("Topic :: System")
	// Topic :: System :: Archiving
	Topic__System__Archiving = register("Topic :: System :: Archiving")
	// Topic :: System :: Archiving :: Backup
	Topic__System__Archiving__Backup = register("Topic :: System :: Archiving :: Backup")
	// Topic :: System :: Archiving :: Compression
	Topic__System__Archiving__Compression = register("Topic :: System :: Archiving :: Compression")
	// Topic :: System :: Archiving :: Mirroring
	Topic__System__Archiving__Mirroring = register("Topic :: System :: Archiving :: Mirroring")
	// Topic :: System :: Archiving :: Packaging
	Topic__System__Archiving__Packaging = register("Topic :: System :: Archiving :: Packaging")
	// Topic :: System :: Benchmark
	Topic__System__Benchmark = register("Topic :: System :: Benchmark")
	// Topic :: System :: Boot
	Topic__System__Boot = register("Topic :: System :: Boot")
	// Topic :: System :: Boot :: Init
	Topic__System__Boot__Init = register("Topic :: System :: Boot :: Init")
	// Topic :: System :: Clustering
	Topic__System__Clustering = register("Topic :: System :: Clustering")
	// Topic :: System :: Console Fonts
	Topic__System__ConsoleFonts = register("Topic :: System :: Console Fonts")
	// Topic :: System :: Distributed Computing
	Topic__System__DistributedComputing = register("Topic :: System :: Distributed Computing")
	// Topic :: System :: Emulators
	Topic__System__Emulators = register("Topic :: System :: Emulators")
	// Topic :: System :: Filesystems
	Topic__System__Filesystems = register("Topic :: System :: Filesystems")
	// Topic :: System :: Hardware
	Topic__System__Hardware = register("Topic :: System :: Hardware")
	// Topic :: System :: Hardware :: Hardware Drivers
	Topic__System__Hardware__HardwareDrivers = register("Topic :: System :: Hardware :: Hardware Drivers")
	// Topic :: System :: Hardware :: Mainframes
	Topic__System__Hardware__Mainframes = register("Topic :: System :: Hardware :: Mainframes")
	// Topic :: System :: Hardware :: Symmetric Multi-processing
	Topic__System__Hardware__SymmetricMultiprocessing = register("Topic :: System :: Hardware :: Symmetric Multi-processing")
	// Topic :: System :: Hardware :: Universal Serial Bus (USB)
	Topic__System__Hardware__UniversalSerialBusUSB = register("Topic :: System :: Hardware :: Universal Serial Bus (USB)")
	// Topic :: System :: Hardware :: Universal Serial Bus (USB) :: Audio
	Topic__System__Hardware__UniversalSerialBusUSB__Audio = register("Topic :: System :: Hardware :: Universal Serial Bus (USB) :: Audio")
	// Topic :: System :: Hardware :: Universal Serial Bus (USB) :: Hub
	Topic__System__Hardware__UniversalSerialBusUSB__Hub = register("Topic :: System :: Hardware :: Universal Serial Bus (USB) :: Hub")
	// Topic :: System :: Hardware :: Universal Serial Bus (USB) :: Printer
	Topic__System__Hardware__UniversalSerialBusUSB__Printer = register("Topic :: System :: Hardware :: Universal Serial Bus (USB) :: Printer")
	// Topic :: System :: Hardware :: Universal Serial Bus (USB) :: Smart Card
	Topic__System__Hardware__UniversalSerialBusUSB__SmartCard = register("Topic :: System :: Hardware :: Universal Serial Bus (USB) :: Smart Card")
	// Topic :: System :: Hardware :: Universal Serial Bus (USB) :: Vendor
	Topic__System__Hardware__UniversalSerialBusUSB__Vendor = register("Topic :: System :: Hardware :: Universal Serial Bus (USB) :: Vendor")
	// Topic :: System :: Installation/Setup
	Topic__System__InstallationSetup = register("Topic :: System :: Installation/Setup")
	// Topic :: System :: Logging
	Topic__System__Logging = register("Topic :: System :: Logging")
	// Topic :: System :: Monitoring
	Topic__System__Monitoring = register("Topic :: System :: Monitoring")
	// Topic :: System :: Networking
	Topic__System__Networking = register("Topic :: System :: Networking")
	// Topic :: System :: Networking :: Firewalls
	Topic__System__Networking__Firewalls = register("Topic :: System :: Networking :: Firewalls")
	// Topic :: System :: Networking :: Monitoring
	Topic__System__Networking__Monitoring = register("Topic :: System :: Networking :: Monitoring")
	// Topic :: System :: Networking :: Monitoring :: Hardware Watchdog
	Topic__System__Networking__Monitoring__HardwareWatchdog = register("Topic :: System :: Networking :: Monitoring :: Hardware Watchdog")
	// Topic :: System :: Networking :: Time Synchronization
	Topic__System__Networking__TimeSynchronization = register("Topic :: System :: Networking :: Time Synchronization")
	// Topic :: System :: Operating System
	Topic__System__OperatingSystem = register("Topic :: System :: Operating System")
	// Topic :: System :: Operating System Kernels
	Topic__System__OperatingSystemKernels = register("Topic :: System :: Operating System Kernels")
	// Topic :: System :: Operating System Kernels :: BSD
	Topic__System__OperatingSystemKernels__BSD = register("Topic :: System :: Operating System Kernels :: BSD")
	// Topic :: System :: Operating System Kernels :: GNU Hurd
	Topic__System__OperatingSystemKernels__GNUHurd = register("Topic :: System :: Operating System Kernels :: GNU Hurd")
	// Topic :: System :: Operating System Kernels :: Linux
	Topic__System__OperatingSystemKernels__Linux = register("Topic :: System :: Operating System Kernels :: Linux")
	// Topic :: System :: Power (UPS)
	Topic__System__PowerUPS = register("Topic :: System :: Power (UPS)")
	// Topic :: System :: Recovery Tools
	Topic__System__RecoveryTools = register("Topic :: System :: Recovery Tools")
	// Topic :: System :: Shells
	Topic__System__Shells = register("Topic :: System :: Shells")
	// Topic :: System :: Software Distribution
	Topic__System__SoftwareDistribution = register("Topic :: System :: Software Distribution")
	// Topic :: System :: System Shells
	Topic__System__SystemShells = register("Topic :: System :: System Shells")
	// Topic :: System :: Systems Administration
	Topic__System__SystemsAdministration = register("Topic :: System :: Systems Administration")
	// Topic :: System :: Systems Administration :: Authentication/Directory
	Topic__System__SystemsAdministration__AuthenticationDirectory = register("Topic :: System :: Systems Administration :: Authentication/Directory")
	// Topic :: Terminals
	Topic__Terminals = register("Topic :: Terminals")
	// Topic :: Terminals :: Serial
	Topic__Terminals__Serial = register("Topic :: Terminals :: Serial")
	// Topic :: Terminals :: Telnet
	Topic__Terminals__Telnet = register("Topic :: Terminals :: Telnet")
	// Topic :: Terminals :: Terminal Emulators/X Terminals
	Topic__Terminals__TerminalEmulatorsXTerminals = register("Topic :: Terminals :: Terminal Emulators/X Terminals")
	// Topic :: Text Editors
	Topic__TextEditors = register("Topic :: Text Editors")
	// Topic :: Text Editors :: Documentation
	Topic__TextEditors__Documentation = register("Topic :: Text Editors :: Documentation")
	// Topic :: Text Editors :: Emacs
	Topic__TextEditors__Emacs = register("Topic :: Text Editors :: Emacs")
	// Topic :: Text Editors :: Integrated Development Environments (IDE)
	Topic__TextEditors__IntegratedDevelopmentEnvironmentsIDE = register("Topic :: Text Editors :: Integrated Development Environments (IDE)")
	// Topic :: Text Editors :: Text Processing
	Topic__TextEditors__TextProcessing = register("Topic :: Text Editors :: Text Processing")
	// Topic :: Text Editors :: Word Processors
	Topic__TextEditors__WordProcessors = register("Topic :: Text Editors :: Word Processors")
	// Topic :: Text Processing
	Topic__TextProcessing = register("Topic :: Text Processing")
	// Topic :: Text Processing :: Filters
	Topic__TextProcessing__Filters = register("Topic :: Text Processing :: Filters")
	// Topic :: Text Processing :: Fonts
	Topic__TextProcessing__Fonts = register("Topic :: Text Processing :: Fonts")
	// Topic :: Text Processing :: General
	Topic__TextProcessing__General = register("Topic :: Text Processing :: General")
	// Topic :: Text Processing :: Indexing
	Topic__TextProcessing__Indexing = register("Topic :: Text Processing :: Indexing")
	// Topic :: Text Processing :: Linguistic
	Topic__TextProcessing__Linguistic = register("Topic :: Text Processing :: Linguistic")
	// Topic :: Text Processing :: Markup
	Topic__TextProcessing__Markup = register("Topic :: Text Processing :: Markup")
	// Topic :: Text Processing :: Markup :: HTML
	Topic__TextProcessing__Markup__HTML = register("Topic :: Text Processing :: Markup :: HTML")
	// Topic :: Text Processing :: Markup :: LaTeX
	Topic__TextProcessing__Markup__LaTeX = register("Topic :: Text Processing :: Markup :: LaTeX")
	// Topic :: Text Processing :: Markup :: Markdown
	Topic__TextProcessing__Markup__Markdown = register("Topic :: Text Processing :: Markup :: Markdown")
	// Topic :: Text Processing :: Markup :: SGML
	Topic__TextProcessing__Markup__SGML = register("Topic :: Text Processing :: Markup :: SGML")
	// Topic :: Text Processing :: Markup :: VRML
	Topic__TextProcessing__Markup__VRML = register("Topic :: Text Processing :: Markup :: VRML")
	// Topic :: Text Processing :: Markup :: XML
	Topic__TextProcessing__Markup__XML = register("Topic :: Text Processing :: Markup :: XML")
	// Topic :: Text Processing :: Markup :: reStructuredText
	Topic__TextProcessing__Markup__reStructuredText = register("Topic :: Text Processing :: Markup :: reStructuredText")
	// Topic :: Utilities
	Topic__Utilities = register("Topic :: Utilities")
	// Typing :: Stubs Only
	Typing__StubsOnly = register("Typing :: Stubs Only")
	// Typing :: Typed
	Typing__Typed = register("Typing :: Typed")
	// trove:end
)
