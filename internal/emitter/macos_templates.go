package emitter

// Template bodies for native macOS projects. The Xcode project itself is
// not generated; the README walks through creating one from these sources.

const macOSSwiftUIApp = `import SwiftUI

@main
struct {{.AppClass}}App: App {
{{- if .Cfg.Features.MenuBar}}
    @NSApplicationDelegateAdaptor(AppDelegate.self) var appDelegate
{{- end}}

    var body: some Scene {
{{- if eq .Cfg.Category "menubar"}}
        MenuBarExtra("{{.Project}}", systemImage: "star") {
            ContentView()
        }
        .menuBarExtraStyle(.window)
{{- else}}
        WindowGroup {
            ContentView()
        }
        .windowStyle(.automatic)
{{- end}}
{{- if .Cfg.Features.MenuBar}}

        Settings {
            SettingsView()
        }
{{- end}}
    }
}
`

const macOSAppDelegate = `import AppKit
import SwiftUI

class AppDelegate: NSObject, NSApplicationDelegate {
    func applicationDidFinishLaunching(_ notification: Notification) {
        // Configure app delegate here
    }

    func applicationWillTerminate(_ notification: Notification) {
        // Cleanup code here
    }

    func applicationShouldTerminateAfterLastWindowClosed(_ sender: NSApplication) -> Bool {
        return true
    }
}
`

const macOSAppKitApp = `import Cocoa
import SwiftUI

@main
class AppDelegate: NSObject, NSApplicationDelegate {
    var window: NSWindow!

    func applicationDidFinishLaunching(_ aNotification: Notification) {
        let contentRect = NSRect(x: 0, y: 0, width: 800, height: 600)
        let windowStyle: NSWindow.StyleMask = [.titled, .closable, .miniaturizable, .resizable]

        window = NSWindow(
            contentRect: contentRect,
            styleMask: windowStyle,
            backing: .buffered,
            defer: false
        )

        window.title = "{{.Project}}"
        window.center()
        window.makeKeyAndOrderFront(nil)

        let contentView = ContentView()
        window.contentView = NSHostingView(rootView: contentView)
    }

    func applicationWillTerminate(_ aNotification: Notification) {
        // Cleanup code here
    }

    func applicationShouldTerminateAfterLastWindowClosed(_ sender: NSApplication) -> Bool {
        return true
    }
}
`

const macOSContentView = `import SwiftUI

struct ContentView: View {
    @State private var counter = 0

    var body: some View {
        VStack(spacing: 20) {
            Text("Welcome to {{.Project}}!")
                .font(.largeTitle)
                .padding()

            Text("Counter: \(counter)")
                .font(.title2)

            HStack(spacing: 20) {
                Button("Decrement") {
                    counter -= 1
                }
                .buttonStyle(.bordered)

                Button("Increment") {
                    counter += 1
                }
                .buttonStyle(.borderedProminent)
            }

            Text("Start building your app from here.")
                .font(.caption)
                .foregroundColor(.secondary)
        }
        .frame(minWidth: 400, minHeight: 300)
        .padding()
    }
}

#Preview {
    ContentView()
}
`

const macOSSettingsView = `import SwiftUI

struct SettingsView: View {
    @AppStorage("showNotifications") private var showNotifications = true

    var body: some View {
        Form {
            Toggle("Show Notifications", isOn: $showNotifications)
        }
        .padding()
        .frame(width: 400, height: 200)
    }
}
`

const macOSAuthService = `{{if eq .Cfg.Auth.Provider "keychain" -}}
import Foundation
import Security

class AuthService {
    private let service = "{{.BundleID}}"

    func saveCredentials(account: String, password: String) -> Bool {
        guard let data = password.data(using: .utf8) else { return false }

        let query: [String: Any] = [
            kSecClass as String: kSecClassGenericPassword,
            kSecAttrService as String: service,
            kSecAttrAccount as String: account,
            kSecValueData as String: data,
        ]

        SecItemDelete(query as CFDictionary)
        return SecItemAdd(query as CFDictionary, nil) == errSecSuccess
    }

    func loadPassword(account: String) -> String? {
        let query: [String: Any] = [
            kSecClass as String: kSecClassGenericPassword,
            kSecAttrService as String: service,
            kSecAttrAccount as String: account,
            kSecReturnData as String: true,
            kSecMatchLimit as String: kSecMatchLimitOne,
        ]

        var result: AnyObject?
        guard SecItemCopyMatching(query as CFDictionary, &result) == errSecSuccess,
              let data = result as? Data else { return nil }
        return String(data: data, encoding: .utf8)
    }

    func deleteCredentials(account: String) {
        let query: [String: Any] = [
            kSecClass as String: kSecClassGenericPassword,
            kSecAttrService as String: service,
            kSecAttrAccount as String: account,
        ]
        SecItemDelete(query as CFDictionary)
    }
}
{{- else -}}
import Foundation

class AuthService {
    // Implement your auth logic here
    func signIn(username: String, password: String) async -> Bool {
        // TODO: Implement authentication
        return false
    }

    func signOut() {
        // TODO: Implement sign out
    }

    var isAuthenticated: Bool {
        // TODO: Check auth state
        return false
    }
}
{{- end}}
`

const macOSDatabaseService = `{{if eq .Cfg.Database "coredata" -}}
import CoreData

class DatabaseService {
    static let shared = DatabaseService()

    lazy var container: NSPersistentContainer = {
        let container = NSPersistentContainer(name: "{{.AppClass}}")
        container.loadPersistentStores { _, error in
            if let error = error {
                fatalError("Failed to load persistent stores: \(error)")
            }
        }
        return container
    }()

    var context: NSManagedObjectContext {
        container.viewContext
    }

    func save() throws {
        guard context.hasChanges else { return }
        try context.save()
    }
}
{{- else if eq .Cfg.Database "sqlite" -}}
import Foundation
import SQLite3

class DatabaseService {
    private var db: OpaquePointer?

    func open(at path: String) -> Bool {
        return sqlite3_open(path, &db) == SQLITE_OK
    }

    func execute(_ sql: String) -> Bool {
        return sqlite3_exec(db, sql, nil, nil, nil) == SQLITE_OK
    }

    func close() {
        sqlite3_close(db)
        db = nil
    }
}
{{- else -}}
import Foundation
// Add the Realm Swift package to your project:
// https://github.com/realm/realm-swift

class DatabaseService {
    // TODO: Configure your Realm instance here
}
{{- end}}
`

const macOSInfoPlist = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
    <key>CFBundleDevelopmentRegion</key>
    <string>$(DEVELOPMENT_LANGUAGE)</string>
    <key>CFBundleDisplayName</key>
    <string>{{.Project}}</string>
    <key>CFBundleExecutable</key>
    <string>$(EXECUTABLE_NAME)</string>
    <key>CFBundleIdentifier</key>
    <string>{{.BundleID}}</string>
    <key>CFBundleInfoDictionaryVersion</key>
    <string>6.0</string>
    <key>CFBundleName</key>
    <string>$(PRODUCT_NAME)</string>
    <key>CFBundlePackageType</key>
    <string>$(PRODUCT_BUNDLE_PACKAGE_TYPE)</string>
    <key>CFBundleShortVersionString</key>
    <string>1.0</string>
    <key>CFBundleVersion</key>
    <string>1</string>
    <key>LSMinimumSystemVersion</key>
    <string>$(MACOSX_DEPLOYMENT_TARGET)</string>
    <key>NSPrincipalClass</key>
    <string>NSApplication</string>
{{- if not .Cfg.Features.DockIcon}}
    <key>LSUIElement</key>
    <true/>
{{- end}}
{{- if .Cfg.Features.FileAccess}}
    <key>NSDocumentsFolderUsageDescription</key>
    <string>This app needs access to your documents folder.</string>
    <key>NSDownloadsFolderUsageDescription</key>
    <string>This app needs access to your downloads folder.</string>
{{- end}}
</dict>
</plist>
`

const macOSGitignore = `# macOS
.DS_Store

# Xcode
build/
DerivedData/
*.pbxuser
!default.pbxuser
*.mode1v3
!default.mode1v3
*.mode2v3
!default.mode2v3
*.perspectivev3
!default.perspectivev3
xcuserdata/
*.moved-aside
*.xccheckout
*.xcscmblueprint

# Swift Package Manager
.build/
.swiftpm/
`

const macOSReadme = `# {{.Project}}

A native macOS {{.Cfg.Category}} app template generated with appgen.

## Features

- **App Type**: {{.Title .Cfg.Category}}
- **UI Framework**: {{.Title .Cfg.UIFramework}}
- **Database**: {{.Title .Cfg.Database}}
- **Authentication**: {{.YesNo .Cfg.Auth.Enabled}}
- **Menu Bar**: {{.YesNo .Cfg.Features.MenuBar}}
- **Dock Icon**: {{.YesNo .Cfg.Features.DockIcon}}

## Getting Started

1. Create a new macOS app project in Xcode named ` + "`{{.AppClass}}`" + `.
2. Replace the generated sources with the files under ` + "`Sources/`" + `.
3. Merge ` + "`Info.plist`" + ` into the project's Info settings.
4. Build and run (Cmd+R).

The full set of answers used to generate this template is recorded in
` + "`appgen.yml`" + `.
`
