package emitter

// Template bodies for Flutter projects. Placeholders are bound to the
// render context at emission time.

const flutterPubspec = `name: {{.PackageName}}
description: A Flutter {{.Cfg.Category}} template.
publish_to: 'none'
version: 1.0.0+1

environment:
  sdk: '>=3.0.0 <4.0.0'

dependencies:
  flutter:
    sdk: flutter
{{- if .Cfg.Features.Localization}}
  flutter_localizations:
    sdk: flutter
{{- end}}
{{- range .Packages}}
  {{.Name}}: {{.Version}}
{{- end}}

dev_dependencies:
  flutter_test:
    sdk: flutter
{{- range .DevPackages}}
  {{.Name}}: {{.Version}}
{{- end}}

flutter:
  uses-material-design: true

  assets:
    - assets/images/
    - assets/icons/
{{- if eq .Cfg.Category "game"}}
    - assets/sprites/
    - assets/sounds/
{{- end}}
`

const flutterMain = `import 'package:flutter/material.dart';
{{- if eq .Cfg.StateManagement "provider"}}
import 'package:provider/provider.dart';
{{- end}}
{{- if eq .Cfg.StateManagement "riverpod"}}
import 'package:flutter_riverpod/flutter_riverpod.dart';
{{- end}}
{{- if eq .Cfg.StateManagement "bloc"}}
import 'package:flutter_bloc/flutter_bloc.dart';
{{- end}}
{{- if .Cfg.Features.Routing}}
import 'package:go_router/go_router.dart';
{{- end}}
import 'screens/home_screen.dart';
{{- if .Cfg.Features.Theme}}
import 'utils/theme.dart';
{{- end}}

{{if eq .Cfg.StateManagement "riverpod" -}}
void main() {
  runApp(
    const ProviderScope(
      child: MyApp(),
    ),
  );
}
{{- else if eq .Cfg.StateManagement "provider" -}}
void main() {
  runApp(
    MultiProvider(
      providers: [
        // Add your providers here
      ],
      child: const MyApp(),
    ),
  );
}
{{- else -}}
void main() {
  runApp(const MyApp());
}
{{- end}}

class MyApp extends StatelessWidget {
  const MyApp({super.key});

  @override
  Widget build(BuildContext context) {
{{- if .Cfg.Features.Routing}}
    return MaterialApp.router(
      title: '{{.Project}}',
      debugShowCheckedModeBanner: false,
{{- if .Cfg.Features.Theme}}
      theme: AppTheme.lightTheme,
      darkTheme: AppTheme.darkTheme,
      themeMode: ThemeMode.system,
{{- end}}
      routerConfig: _router,
    );
  }
}

final GoRouter _router = GoRouter(
  routes: [
    GoRoute(
      path: '/',
      builder: (context, state) => const HomeScreen(),
    ),
    // Add more routes here
  ],
);
{{- else}}
    return MaterialApp(
      title: '{{.Project}}',
      debugShowCheckedModeBanner: false,
{{- if .Cfg.Features.Theme}}
      theme: AppTheme.lightTheme,
      darkTheme: AppTheme.darkTheme,
      themeMode: ThemeMode.system,
{{- end}}
      home: const HomeScreen(),
    );
  }
}
{{- end}}
`

const flutterHomeScreen = `import 'package:flutter/material.dart';

class HomeScreen extends StatelessWidget {
  const HomeScreen({super.key});

  @override
  Widget build(BuildContext context) {
    return Scaffold(
      appBar: AppBar(
        title: const Text('Home'),
      ),
      body: const Center(
        child: Column(
          mainAxisAlignment: MainAxisAlignment.center,
          children: [
            Text(
              'Welcome to your Flutter app!',
              style: TextStyle(fontSize: 24),
            ),
            SizedBox(height: 20),
            Text(
              'Start building your app from here.',
              style: TextStyle(fontSize: 16, color: Colors.grey),
            ),
          ],
        ),
      ),
    );
  }
}
`

const flutterTheme = `import 'package:flutter/material.dart';

class AppTheme {
  static ThemeData get lightTheme {
    return ThemeData(
      useMaterial3: true,
      colorScheme: ColorScheme.fromSeed(seedColor: Colors.blue),
      appBarTheme: const AppBarTheme(
        centerTitle: true,
        elevation: 0,
      ),
    );
  }

  static ThemeData get darkTheme {
    return ThemeData(
      useMaterial3: true,
      colorScheme: ColorScheme.fromSeed(
        seedColor: Colors.blue,
        brightness: Brightness.dark,
      ),
      appBarTheme: const AppBarTheme(
        centerTitle: true,
        elevation: 0,
      ),
    );
  }
}
`

const flutterAuthService = `{{if eq .Cfg.Auth.Provider "firebase" -}}
import 'package:firebase_auth/firebase_auth.dart';

class AuthService {
  final FirebaseAuth _auth = FirebaseAuth.instance;

  Stream<User?> get authStateChanges => _auth.authStateChanges();

  Future<UserCredential?> signInWithEmailAndPassword(
    String email,
    String password,
  ) async {
    try {
      return await _auth.signInWithEmailAndPassword(
        email: email,
        password: password,
      );
    } catch (e) {
      return null;
    }
  }

  Future<UserCredential?> signUpWithEmailAndPassword(
    String email,
    String password,
  ) async {
    try {
      return await _auth.createUserWithEmailAndPassword(
        email: email,
        password: password,
      );
    } catch (e) {
      return null;
    }
  }

  Future<void> signOut() async {
    await _auth.signOut();
  }

  User? get currentUser => _auth.currentUser;
}
{{- else -}}
class AuthService {
  // Implement your auth logic here
  Future<bool> signIn(String email, String password) async {
    // TODO: Implement authentication
    return false;
  }

  Future<bool> signUp(String email, String password) async {
    // TODO: Implement registration
    return false;
  }

  Future<void> signOut() async {
    // TODO: Implement sign out
  }

  bool get isAuthenticated => false; // TODO: Check auth state
}
{{- end}}
`

const flutterLoginScreen = `import 'package:flutter/material.dart';
import '../../auth/auth_service.dart';

class LoginScreen extends StatefulWidget {
  const LoginScreen({super.key});

  @override
  State<LoginScreen> createState() => _LoginScreenState();
}

class _LoginScreenState extends State<LoginScreen> {
  final _formKey = GlobalKey<FormState>();
  final _emailController = TextEditingController();
  final _passwordController = TextEditingController();
  final _authService = AuthService();
  bool _isLoading = false;

  @override
  void dispose() {
    _emailController.dispose();
    _passwordController.dispose();
    super.dispose();
  }

  Future<void> _handleLogin() async {
    if (_formKey.currentState!.validate()) {
      setState(() => _isLoading = true);
      // TODO: Implement login logic
      setState(() => _isLoading = false);
    }
  }

  @override
  Widget build(BuildContext context) {
    return Scaffold(
      appBar: AppBar(title: const Text('Login')),
      body: Padding(
        padding: const EdgeInsets.all(16.0),
        child: Form(
          key: _formKey,
          child: Column(
            mainAxisAlignment: MainAxisAlignment.center,
            children: [
              TextFormField(
                controller: _emailController,
                decoration: const InputDecoration(
                  labelText: 'Email',
                  border: OutlineInputBorder(),
                ),
                validator: (value) {
                  if (value == null || value.isEmpty) {
                    return 'Please enter your email';
                  }
                  return null;
                },
              ),
              const SizedBox(height: 16),
              TextFormField(
                controller: _passwordController,
                obscureText: true,
                decoration: const InputDecoration(
                  labelText: 'Password',
                  border: OutlineInputBorder(),
                ),
                validator: (value) {
                  if (value == null || value.isEmpty) {
                    return 'Please enter your password';
                  }
                  return null;
                },
              ),
              const SizedBox(height: 24),
              ElevatedButton(
                onPressed: _isLoading ? null : _handleLogin,
                child: _isLoading
                    ? const CircularProgressIndicator()
                    : const Text('Login'),
              ),
            ],
          ),
        ),
      ),
    );
  }
}
`

const flutterDatabaseService = `import 'package:sqflite/sqflite.dart';
import 'package:path/path.dart';

class DatabaseService {
  static Database? _database;
  static const String _databaseName = 'app_database.db';
  static const int _databaseVersion = 1;

  Future<Database> get database async {
    if (_database != null) return _database!;
    _database = await _initDatabase();
    return _database!;
  }

  Future<Database> _initDatabase() async {
    String path = join(await getDatabasesPath(), _databaseName);
    return await openDatabase(
      path,
      version: _databaseVersion,
      onCreate: _onCreate,
    );
  }

  Future<void> _onCreate(Database db, int version) async {
    // TODO: Create your tables here
    // Example:
    // await db.execute('''
    //   CREATE TABLE items (
    //     id INTEGER PRIMARY KEY AUTOINCREMENT,
    //     name TEXT NOT NULL,
    //     created_at INTEGER NOT NULL
    //   )
    // ''');
  }

  Future<void> close() async {
    final db = await database;
    await db.close();
  }
}
`

const flutterFirestoreService = `import 'package:cloud_firestore/cloud_firestore.dart';

class FirestoreService {
  final FirebaseFirestore _firestore = FirebaseFirestore.instance;

  Stream<QuerySnapshot> getCollection(String collectionName) {
    return _firestore.collection(collectionName).snapshots();
  }

  Future<void> addDocument(String collectionName, Map<String, dynamic> data) async {
    await _firestore.collection(collectionName).add(data);
  }

  Future<void> updateDocument(
    String collectionName,
    String documentId,
    Map<String, dynamic> data,
  ) async {
    await _firestore.collection(collectionName).doc(documentId).update(data);
  }

  Future<void> deleteDocument(String collectionName, String documentId) async {
    await _firestore.collection(collectionName).doc(documentId).delete();
  }
}
`

const flutterGame = `import 'package:flame/game.dart';
import 'package:flutter/material.dart';

class MyGame extends FlameGame {
  @override
  Future<void> onLoad() async {
    // TODO: Initialize your game components
    super.onLoad();
  }

  @override
  void update(double dt) {
    // TODO: Update game logic
    super.update(dt);
  }

  @override
  void render(Canvas canvas) {
    // TODO: Render game elements
    super.render(canvas);
  }
}
`

const flutterP2PService = `{{if eq .Cfg.Game.P2PLibrary "peerdart" -}}
import 'package:peerdart/peerdart.dart';

/// Peer-to-peer connection service backed by WebRTC.
/// peerdart may need a signaling server for the initial handshake;
/// the PeerJS cloud works for development.
class P2PService {
  Peer? _peer;
  DataConnection? _connection;

  void Function(dynamic data)? onData;
  void Function()? onConnected;
  void Function()? onDisconnected;

  String? get peerId => _peer?.id;

  void host() {
    _peer = Peer();
    _peer!.on('connection').listen((event) {
      _connection = event as DataConnection;
      _wireConnection();
    });
  }

  void join(String remotePeerId) {
    _peer = Peer();
    _peer!.on('open').listen((_) {
      _connection = _peer!.connect(remotePeerId);
      _wireConnection();
    });
  }

  void _wireConnection() {
    _connection!.on('open').listen((_) => onConnected?.call());
    _connection!.on('data').listen((data) => onData?.call(data));
    _connection!.on('close').listen((_) => onDisconnected?.call());
  }

  void send(dynamic data) {
    _connection?.send(data);
  }

  void dispose() {
    _connection?.close();
    _peer?.dispose();
  }
}
{{- else if eq .Cfg.Game.P2PLibrary "nearby" -}}
import 'package:flutter_nearby_connections/flutter_nearby_connections.dart';

/// Peer-to-peer connection service over local WiFi/Bluetooth.
class P2PService {
  final NearbyService _nearby = NearbyService();
  final List<Device> _devices = [];

  void Function(String deviceId, String message)? onData;

  Future<void> init(String deviceName) async {
    await _nearby.init(
      serviceType: 'mp-game',
      deviceName: deviceName,
      strategy: Strategy.P2P_CLUSTER,
      callback: (isRunning) async {
        if (isRunning) {
          await _nearby.startBrowsingForPeers();
          await _nearby.startAdvertisingPeer();
        }
      },
    );

    _nearby.stateChangedSubscription(callback: (devices) {
      _devices
        ..clear()
        ..addAll(devices);
    });

    _nearby.dataReceivedSubscription(callback: (data) {
      onData?.call(data['deviceId'] as String, data['message'] as String);
    });
  }

  Future<void> connect(Device device) async {
    await _nearby.invitePeer(deviceID: device.deviceId, deviceName: device.deviceName);
  }

  Future<void> send(String deviceId, String message) async {
    await _nearby.sendMessage(deviceId, message);
  }

  Future<void> dispose() async {
    await _nearby.stopBrowsingForPeers();
    await _nearby.stopAdvertisingPeer();
  }
}
{{- else -}}
import 'package:enet/enet.dart';

/// Low-latency UDP connection service. Requires a host acting as server.
class P2PService {
  Host? _host;
  Peer? _peer;

  void Function(List<int> data)? onData;

  void serve(int port, {int maxPeers = 8}) {
    _host = Host.create(
      address: Address.any(port),
      peerCount: maxPeers,
    );
  }

  void connect(String hostAddress, int port) {
    _host = Host.create(peerCount: 1);
    _peer = _host!.connect(Address(hostAddress, port), channelCount: 2);
  }

  void poll() {
    final event = _host?.service(timeout: 0);
    if (event is ReceiveEvent) {
      onData?.call(event.packet.data);
    }
  }

  void send(List<int> data, {int channel = 0}) {
    _peer?.send(Packet(data, flags: PacketFlag.reliable), channel);
  }

  void dispose() {
    _peer?.disconnect();
    _host?.destroy();
  }
}
{{- end}}
`

const flutterExampleFeature = `// Example feature structure for transactional apps
// Organize your features in the lib/features directory

class FeatureExample {
  // TODO: Implement your feature logic here
}
`

const flutterGitignore = `# Miscellaneous
*.class
*.log
*.pyc
*.swp
.DS_Store
.atom/
.buildlog/
.history
.svn/
migrate_working_dir/

# IntelliJ related
*.iml
*.ipr
*.iws
.idea/

# VS Code
.vscode/

# Flutter/Dart/Pub related
**/doc/api/
**/ios/Flutter/.last_build_id
.dart_tool/
.flutter-plugins
.flutter-plugins-dependencies
.packages
.pub-cache/
.pub/
/build/

# Symbolication related
app.*.symbols

# Obfuscation related
app.*.map.json

# Android Studio will place build artifacts here
/android/app/debug
/android/app/profile
/android/app/release

# iOS
**/ios/**/xcuserdata
**/ios/**/Pods/
**/ios/**/.symlinks/
**/ios/**/DerivedData/
**/ios/.generated/
**/ios/Flutter/App.framework
**/ios/Flutter/Flutter.framework
**/ios/Flutter/Generated.xcconfig
**/ios/Flutter/ephemeral
**/ios/Runner/GeneratedPluginRegistrant.*

# Firebase
**/ios/firebase_app_id_file.json
**/android/app/google-services.json
`

const flutterAnalysisOptions = `include: package:flutter_lints/flutter.yaml

linter:
  rules:
    - prefer_const_constructors
    - prefer_const_literals_to_create_immutables
    - avoid_print
    - prefer_single_quotes
    - require_trailing_commas

analyzer:
  exclude:
    - "**/*.g.dart"
    - "**/*.freezed.dart"
`

const flutterReadme = `# {{.Project}}

A Flutter {{.Cfg.Category}} template generated with appgen.

## Features

- **App Type**: {{.Title .Cfg.Category}}
- **State Management**: {{.Title .Cfg.StateManagement}}
- **Database**: {{.Title .Cfg.Database}}
- **Authentication**: {{.YesNo .Cfg.Auth.Enabled}}
- **Routing**: {{.YesNo .Cfg.Features.Routing}}
- **Theme Management**: {{.YesNo .Cfg.Features.Theme}}

## Getting Started

1. Install Flutter dependencies:

   ` + "```bash" + `
   flutter pub get
   ` + "```" + `

2. Run the app:

   ` + "```bash" + `
   flutter run
   ` + "```" + `

## Project Structure

` + "```" + `
lib/
├── auth/              # Authentication logic
├── models/            # Data models
├── screens/           # UI screens
├── services/          # Business logic services
├── widgets/           # Reusable widgets
├── utils/             # Utility functions
└── constants/         # App constants
` + "```" + `
{{if eq .Cfg.Auth.Provider "firebase"}}
## Firebase Setup

1. Add your ` + "`google-services.json`" + ` to ` + "`android/app/`" + `
2. Add your ` + "`GoogleService-Info.plist`" + ` to ` + "`ios/Runner/`" + `
3. Follow the Firebase setup instructions for Flutter
{{end}}{{if eq .Cfg.Database "sqlite"}}
## Database Setup

Configure your SQLite schema in ` + "`lib/services/database_service.dart`" + `.
{{end}}
This template provides a starting point for your Flutter app. The full set
of answers used to generate it is recorded in ` + "`appgen.yml`" + `.
`
