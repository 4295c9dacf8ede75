// SPDX-License-Identifier: MIT

package special

// erfcxCoefficients holds, for each unit bucket k of z = 400/(4+x), the
// coefficients c₀..c₆ of the degree-6 polynomial in t = 2z - (2k+1)
// approximating erfcx on that bucket.
var erfcxCoefficients = [100][7]float64{
	{0.0007087803245410644, 0.000712340910470263, 3.5779077297600978e-06, 1.7403143962938394e-08, 8.171065895410545e-11, 3.688499321709782e-13, 1.5925083856522965e-15},
	{0.0021479143208285143, 0.0007268640236737999, 3.684317543093896e-06, 1.8071841272149208e-08, 8.5496449306125e-11, 3.885203751794284e-13, 1.6868406347164054e-15},
	{0.0036165255935630175, 0.0007418209232355551, 3.79483199575282e-06, 1.8771627021793097e-08, 8.948471513317186e-11, 4.0935858517111083e-13, 1.78719897504951e-15},
	{0.005115498386003198, 0.0007572284073479166, 3.909642572673566e-06, 1.950416870430048e-08, 9.368750307465648e-11, 4.3143925958361274e-13, 1.8939849919420035e-15},
	{0.006645751317267305, 0.0007731040605444745, 4.02895105893994e-06, 2.0271233238288392e-08, 9.811763133394578e-11, 4.54842074052329e-13, 2.0076270635782845e-15},
	{0.008208238997024121, 0.0007894662961188171, 4.152970155262261e-06, 2.1074693344544664e-08, 1.0278874109893012e-10, 4.796520138984048e-13, 2.1285820366865424e-15},
	{0.009803953727535219, 0.0008063344010834284, 4.281924132973693e-06, 2.191653434690718e-08, 1.0771535137957674e-10, 5.059597262270392e-13, 2.2573369861620843e-15},
	{0.011433927298290302, 0.0008237285838319657, 4.4160495311765385e-06, 2.2798861426211994e-08, 1.1291291747363441e-10, 5.338618936508669e-13, 2.3944110597644797e-15},
	{0.013099232878814654, 0.0008416700246790696, 4.555595898845745e-06, 2.372390735721419e-08, 1.1839789328185866e-10, 5.634616306634974e-13, 2.5403574085022882e-15},
	{0.014800987015587536, 0.0008601809294634594, 4.700826584881681e-06, 2.469404076019733e-08, 1.2418779770440416e-10, 5.948689036923226e-13, 2.6957652027497704e-15},
	{0.01654035173939407, 0.0008792845864124146, 4.8520195793001684e-06, 2.5711774900881723e-08, 1.303012853603128e-10, 6.282009758563704e-13, 2.8612617334806515e-15},
	{0.018318536789842393, 0.0008990054264789172, 5.009468408955329e-06, 2.6779777074218083e-08, 1.36758221882233e-10, 6.635828774431657e-13, 3.037514597247638e-15},
	{0.020136801964214277, 0.0009193690873767368, 5.17348309141042e-06, 2.790087860971045e-08, 1.4357976404854765e-10, 7.011479030970409e-13, 3.2252339626761383e-15},
	{0.021996459598282742, 0.0009404024815536678, 5.344391150804108e-06, 2.9078085538049127e-08, 1.507884450248612e-10, 7.410381366788516e-13, 3.425174915269902e-15},
	{0.02389887718722632, 0.0009621338683590018, 5.522538699804892e-06, 3.03145899610477e-08, 1.5840826499618341e-10, 7.834050047122121e-13, 3.6381398762391676e-15},
	{0.025845480155298518, 0.0009845929306782012, 5.708291592005175e-06, 3.161378216916485e-08, 1.6646478748001972e-10, 8.284098592727665e-13, 3.864981089852969e-15},
	{0.027837754783474698, 0.0010078108563256892, 5.902036649379211e-06, 3.2979263553246665e-08, 1.749852416187882e-10, 8.762245911031356e-13, 4.1066031724823145e-15},
	{0.029877251304899308, 0.001031820424505735, 6.104182969716195e-06, 3.4414860359542744e-08, 1.839986307573737e-10, 9.27032273645532e-13, 4.363965715036727e-15},
	{0.03196558717859645, 0.0010566560976716574, 6.315163319241447e-06, 3.592463833952198e-08, 1.9353584761802174e-10, 9.810278385750124e-13, 4.638085928901548e-15},
	{0.03410445055258834, 0.0010823541191350532, 6.5354356159553814e-06, 3.7512918348533544e-08, 2.0362979638997886e-10, 1.0384187832874047e-12, 4.93004132375748e-15},
	{0.036295603928292425, 0.0011089526167995269, 6.765484509551824e-06, 3.918429294991362e-08, 2.1431552205509693e-10, 1.09942591064551e-12, 5.240972403809103e-15},
	{0.03854088803884051, 0.001136491713417542, 7.005823064124618e-06, 4.094364408371862e-08, 2.2563034727280766e-10, 1.1642841011137534e-12, 5.572085366970073e-15},
	{0.04084222595478596, 0.0011650136437945675, 7.256994550234286e-06, 4.2796161861855074e-08, 2.376140171482113e-10, 1.2332431172135537e-12, 5.9246547894562765e-15},
	{0.04320162743154022, 0.0011945628793917271, 7.519574353284905e-06, 4.4747364553961024e-08, 2.503088522052513e-10, 1.3065684400079778e-12, 6.3000262760344655e-15},
	{0.04562119351381047, 0.001225186260806753, 7.794172005555177e-06, 4.680311983095449e-08, 2.637599098828056e-10, 1.3845421370735065e-12, 6.699619053875751e-15},
	{0.048103121413299865, 0.0012569331386432195, 8.081433349636751e-06, 4.8969667335682046e-08, 2.780151548647347e-10, 1.4674637611379476e-12, 7.124928485587486e-15},
	{0.05064970967698334, 0.0012898555233099055, 8.382042841456862e-06, 5.125364265255187e-08, 2.9312563854520775e-10, 1.5556512782558526e-12, 7.577528474563467e-15},
	{0.053263363664388864, 0.0013240082443256975, 8.696726001500746e-06, 5.366210275039683e-08, 3.091456879176825e-10, 1.649442024055693e-12, 8.059073733325052e-15},
	{0.05594660135350001, 0.001359449119740819, 9.026252023301618e-06, 5.6202552975056677e-08, 3.2613310415945217e-10, 1.7491936862262693e-12, 8.571301883052364e-15},
	{0.058702059496154084, 0.0013962391363223647, 9.371436548731257e-06, 5.8882975670265265e-08, 3.44149371163392e-10, 1.855285311013493e-12, 9.116035350056813e-15},
	{0.061532500145144775, 0.0014344426411912014, 9.733144620101657e-06, 6.171186050734707e-08, 3.6325987424415054e-10, 1.9681183310732907e-12, 9.695183022559256e-15},
	{0.06444081757665329, 0.0014741275456383132, 1.0112293819576414e-05, 6.46982366059331e-08, 3.835341292172466e-10, 2.0881176115729204e-12, 1.0310741628850992e-14},
	{0.06743004563313039, 0.001515365541891654, 1.0509857606888303e-05, 6.785170652936345e-08, 4.050460220160778e-10, 2.215732510952879e-12, 1.0964796795770178e-14},
	{0.07050336551333886, 0.001558232333649571, 1.0926868866865203e-05, 7.118248223961347e-08, 4.278740589734693e-10, 2.3514379522568354e-12, 1.1659523744469194e-14},
	{0.0736641140379446, 0.001602807881243882, 1.1364423678778179e-05, 7.470142309742314e-08, 4.521016278508476e-10, 2.495735500410138e-12, 1.2397187578727319e-14},
	{0.07691579242081956, 0.0016491766623447889, 1.1823685320041273e-05, 7.842007599378166e-08, 4.778172696492198e-10, 2.649154440281598e-12, 1.3180143119627159e-14},
	{0.08026207557809462, 0.0016974279491709504, 1.230588851730986e-05, 8.235071769897896e-08, 5.051149611816896e-10, 2.8122528498021026e-12, 1.4010834239314142e-14},
	{0.08370682200898036, 0.0017476561032212657, 1.281234395854073e-05, 8.650639951503671e-08, 5.340944083271268e-10, 2.9856186618416018e-12, 1.489179264584706e-14},
	{0.08725408428446171, 0.0017999608886001962, 1.3344443080089457e-05, 9.090099431642902e-08, 5.648613498187337e-10, 3.1698707079680015e-12, 1.582563607087541e-14},
	{0.09090812018217274, 0.00185444780506577, 1.3903663143426084e-05, 9.554924606254991e-08, 5.975278713495958e-10, 3.365659736633137e-12, 1.681506581209525e-14},
	{0.09467340450807549, 0.0019112284419887304, 1.4491572616544968e-05, 1.0046682186333586e-07, 6.322127296998806e-10, 3.5736693977583915e-12, 1.7862863583186608e-14},
	{0.09855464164800445, 0.0019704208544725622, 1.5109836875625404e-05, 1.0567036667675976e-07, 6.690416865072614e-10, 3.794617185132346e-12, 1.8971887625264966e-14},
	{0.1025567788947009, 0.0020321499629472857, 1.576022424296214e-05, 1.1117756071353524e-07, 7.081478512135404e-10, 4.0292553274923124e-12, 2.0145068035825773e-14},
	{0.10668502059865094, 0.002096547977614873, 1.6444612377624938e-05, 1.1700717962026146e-07, 7.49672032626569e-10, 4.2783716186482746e-12, 2.1385401273756294e-14},
	{0.11094484319386444, 0.002163754849190817, 1.7164995035719612e-05, 1.231791575073591e-07, 7.937630984377203e-10, 4.542790176529609e-12, 2.269594380225895e-14},
	{0.11534201115268805, 0.002233918747454642, 1.792348921750418e-05, 1.2971465288246008e-07, 8.405783419317547e-10, 4.823372120600181e-12, 2.4079804835492096e-14},
	{0.11988259392684095, 0.002307196569191869, 1.8722342718958886e-05, 1.3663611754337988e-07, 8.902838550184072e-10, 5.1210161567043806e-12, 2.5540138159395608e-14},
	{0.12457298393509812, 0.0023837544771809576, 1.956394210571156e-05, 1.43967368477395e-07, 9.430549066039764e-10, 5.436659058083743e-12, 2.708013300252871e-14},
	{0.12941991566142438, 0.002463768471950886, 2.0450821127475828e-05, 1.5173366280523922e-07, 9.990763252072504e-10, 5.771276031049368e-12, 2.870300393879361e-14},
	{0.13443048593088697, 0.0025474249981080823, 2.138566959136286e-05, 1.5996177579900445e-07, 1.0585428846079942e-09, 6.125880953617442e-12, 3.0411979810627285e-14},
	{0.13961217543434562, 0.0026349215871051762, 2.237134271257251e-05, 1.686800819929682e-07, 1.1216596911987424e-09, 6.50152647532161e-12, 3.22102916685812e-14},
	{0.144972871576738, 0.002726467538398244, 2.341087096105089e-05, 1.7791863939526388e-07, 1.188642571592682e-09, 6.89930396641394e-12, 3.410115973112766e-14},
	{0.15052089272774619, 0.0028222846410136237, 2.4507470422713334e-05, 1.8770927679626163e-07, 1.2597184589229143e-09, 7.320343304762486e-12, 3.608777937697524e-14},
	{0.1562650139577461, 0.0029226079376196627, 2.5664553693768386e-05, 1.9808568415654475e-07, 1.335125776152365e-09, 7.765812488953821e-12, 3.8173306191075094e-14},
	{0.16221449434620738, 0.0030276865332726477, 2.68857413265345e-05, 2.0908350604346407e-07, 1.415114814600136e-09, 8.236917066418452e-12, 4.036084009477571e-14},
	{0.1683791059541213, 0.0031377844510793083, 2.8174873844911106e-05, 2.2074043807045824e-07, 1.4999481057802864e-09, 8.734899365819636e-12, 4.2653408600147686e-14},
	{0.1747691645565937, 0.0032531815370903066, 2.9536024347344294e-05, 2.330963262776708e-07, 1.5899007845440065e-09, 9.261037523484777e-12, 4.5053949238253756e-14},
	{0.18139556223643702, 0.0033741744168097, 3.097351171470943e-05, 2.4619326937592287e-07, 1.685260941417121e-09, 9.816644294314918e-12, 4.7565291220978647e-14},
	{0.18826980194443665, 0.0035010775057740316, 3.249191444001419e-05, 2.600757237588631e-07, 1.7863299619329693e-09, 1.0403065638382129e-11, 5.0190136405846866e-14},
	{0.19540403413693969, 0.0036342240767211326, 3.409608509620083e-05, 2.7479061117017636e-07, 1.893422850677159e-09, 1.1021679075315995e-11, 5.293103964292874e-14},
	{0.20281109560651886, 0.00377396738593236, 3.579116545759233e-05, 2.9038742889416174e-07, 2.0068685376866193e-09, 1.1673891799586383e-11, 5.579038859234792e-14},
	{0.21050455062669335, 0.003920681861392565, 3.7582602289680024e-05, 3.0691836231886903e-07, 2.127010164781948e-09, 1.236113855090647e-11, 5.877038310993765e-14},
	{0.21849873453703333, 0.004074764355468959, 3.9476163820986635e-05, 3.244383997013993e-07, 2.2542053493602833e-09, 1.30848792352023e-11, 6.187301430713029e-14},
	{0.2268087999004323, 0.004236635464862852, 4.1477956909656815e-05, 3.43005448945028e-07, 2.3888264231369262e-09, 1.3846596292916407e-11, 6.510004339908849e-14},
	{0.23545076536988704, 0.004406740920636517, 4.359444491622462e-05, 3.626804561776042e-07, 2.5312606432985876e-09, 1.464779181282505e-11, 6.845298046228708e-14},
	{0.24444156740777434, 0.004585553051160578, 4.5832466292683005e-05, 3.835275259003301e-07, 2.681910373520323e-09, 1.5489984391042203e-11, 7.193306322912587e-14},
	{0.25379911500634267, 0.004773572320865003, 4.8199253896534104e-05, 4.0561404245564733e-07, 2.841193232302722e-09, 1.6374705736448056e-11, 7.554123605259985e-14},
	{0.26354234756393613, 0.0049713289477083785, 5.0702455036930286e-05, 4.2901079254268174e-07, 3.009542206106349e-09, 1.7303497025403664e-11, 7.927812917848617e-14},
	{0.27369129607732345, 0.005179384602305264, 5.335015225832652e-05, 4.537920884886501e-07, 3.1874057247973827e-09, 1.827790501028408e-11, 8.314403846585248e-14},
	{0.28426714781640317, 0.005398334191669514, 5.615088486525573e-05, 4.800358919649474e-07, 3.3752476969722083e-09, 1.9299477888066297e-11, 8.713890569888222e-14},
	{0.2952923146534852, 0.0056288077305420795, 5.911367118991323e-05, 5.078239378174485e-07, 3.5735475027996875e-09, 2.036976093693129e-11, 9.126229963400168e-14},
	{0.3067905052252884, 0.00587147230327454, 6.22480316021976e-05, 5.372418576620093e-07, 3.782799942108064e-09, 2.149029193056706e-11, 9.551339792604291e-14},
	{0.3187868011117332, 0.00612703411923391, 6.556401225970756e-05, 5.68379302878377e-07, 4.003515135548933e-09, 2.2662596341576552e-11, 9.989097007566333e-14},
	{0.33130773722152623, 0.006396240664679808, 6.907220959294232e-05, 6.013300666188594e-07, 4.236218376793236e-09, 2.3888182347085404e-11, 1.0439336153746346e-13},
	{0.34438138658041334, 0.0066798829540414, 7.278379551860349e-05, 6.36192204432288e-07, 4.481449933853469e-09, 2.51685356512949e-11, 1.0901847912420332e-13},
	{0.35803744972380175, 0.006978797883488269, 7.671054337145475e-05, 6.730681530891737e-07, 4.739764797781807e-09, 2.650511414131972e-11, 1.137637778372419e-13},
	{0.37230734890119727, 0.007293870689646138, 8.086485454267064e-05, 7.120648471806268e-07, 5.0117323771649e-09, 2.7899342394173883e-11, 1.1862624924684857e-13},
	{0.3872243273055545, 0.00762603751625498, 8.525978581000454e-05, 7.532938330517133e-07, 5.297936137022053e-09, 2.935260605420749e-11, 1.2360241153841435e-13},
	{0.4028235535461694, 0.007976288091502973, 8.990907734243818e-05, 7.968713796195617e-07, 5.5989731809132804e-09, 3.086624610163788e-11, 1.2868830133188716e-13},
	{0.4191422315891379, 0.008345668518695046, 9.482718135925009e-05, 8.429185856178318e-07, 5.915453775276478e-09, 3.24415530340495e-11, 1.338794673720482e-13},
	{0.43621971639463786, 0.00873528418282895, 0.00010002929142066794, 8.915614828021983e-07, 6.2480008152373205e-09, 3.4079760983845173e-11, 1.3917096617662305e-13},
	{0.4540976354853433, 0.009146302775554824, 0.00010553137232446162, 9.429311346463861e-07, 6.597249231370344e-09, 3.578204179560771e-11, 1.4455735971778022e-13},
	{0.4728200166851233, 0.009579957440886046, 0.00011135019058000063, 9.971637300550905e-07, 6.963845337133569e-09, 3.754949908816479e-11, 1.500327152004159e-13},
	{0.4924334222717984, 0.010037550043909497, 0.0001175033454284523, 1.054400671618896e-06, 7.34844611695053e-09, 3.9383162326835145e-11, 1.5559060698787375e-13},
	{0.5129870897920926, 0.010520454564612427, 0.00012400930037494991, 1.1147886579371265e-06, 7.751718455171106e-09, 4.128398093186284e-11, 1.6122412071251607e-13},
	{0.5345330797910137, 0.011030120618800727, 0.00013088741519572266, 1.1784797595374517e-06, 8.17433830640467e-09, 4.3252818449413984e-11, 1.6692585959497464e-13},
	{0.557126430711693, 0.011568077107929736, 0.00013815797838036647, 1.2456314879260903e-06, 8.616989807983953e-09, 4.5290446811713665e-11, 1.7268795298208708e-13},
	{0.5808253212251933, 0.012135935999503878, 0.00014584223996665836, 1.3164068573095713e-06, 9.080364335584099e-09, 4.739754071293722e-11, 1.7850206709959406e-13},
	{0.6056912402529337, 0.01273539623952555, 0.00015396244472258862, 1.3909744385382824e-06, 9.565159503287146e-09, 4.95746721273394e-11, 1.8435941800175852e-13},
	{0.6317891649471572, 0.013368247798287032, 0.00016254186562762076, 1.4695084048334055e-06, 1.0072078109645526e-08, 5.1822304995808024e-11, 1.9025078668629126e-13},
	{0.6591877468972532, 0.014036375850601992, 0.00017160483760259704, 1.552188568872318e-06, 1.0601827031558018e-08, 5.4140790106567957e-11, 1.961665363294454e-13},
	{0.6879595068317443, 0.014741765091365868, 0.00018117679143520433, 1.6392004108230582e-06, 1.1155116068025813e-08, 5.653036019514015e-11, 2.0209663158299093e-13},
	{0.7181810380872997, 0.015486504187117112, 0.00019128428784550924, 1.730735096935997e-06, 1.1732656736103686e-08, 5.899112528788466e-11, 2.0803065986210283e-13},
	{0.7499332191172625, 0.016272790364044783, 0.00020195505163377915, 1.8269894883203341e-06, 1.2335161021600077e-08, 6.152306831253143e-11, 2.1395785454109608e-13},
	{0.7833014353128349, 0.01710293413265243, 0.00021321800585063328, 1.9281661395543912e-06, 1.2963340087308708e-08, 6.412604099803697e-11, 2.19867119962507e-13},
	{0.8183758104102381, 0.017979364149044223, 0.00022510330592753132, 2.0344732868018163e-06, 1.361790294177187e-08, 6.679976008490565e-11, 2.2574705815433743e-13},
	{0.8552514477568512, 0.01890463221254756, 0.0002376423737037126, 2.1461248251306373e-06, 1.4299555071780407e-08, 6.95438038657928e-11, 2.3158599714042005e-13},
	{0.8940286817084994, 0.0198814183991272, 0.00025086793128396, 2.2633402747585233e-06, 1.5008997042006513e-08, 7.235760907477084e-11, 2.3737202071989335e-13},
	{0.9348133394287079, 0.02091253632978037, 0.00026481403465998483, 2.3863447359754915e-06, 1.5746923065341704e-08, 7.52404681421032e-11, 2.430929995837458e-13},
	{0.9777170133588503, 0.02200093857283048, 0.00027951610702682387, 2.515368832524531e-06, 1.6514019547672648e-08, 7.819152682974245e-11, 2.487366236293486e-13},
}
